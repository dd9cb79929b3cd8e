package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingGroupKey              = "group"
	LoggingRedisKey              = "redis_key"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockValueKey          = "lock_value"
)
