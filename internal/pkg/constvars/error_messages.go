package constvars

// Client-facing messages.
const (
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your request"
	ErrClientNotAuthorized                 = "You are not authorized to access this resource"
	ErrClientInvalidCalendarFilename       = "Invalid calendar filename"
	ErrClientGroupNotFound                 = "Group not found"
	ErrClientUpstreamUnavailable           = "Outage schedule provider is unavailable, please try again later"
	ErrClientServerLongRespond             = "Server takes too long to respond"
)

// Developer-facing messages.
const (
	ErrDevInvalidAPIKey           = "invalid or missing API key"
	ErrDevInvalidCalendarFilename = "calendar filename must look like <major>.<minor>.ics"
	ErrDevGroupNotFoundFormat     = "group %s is not present in the upstream dataset"
	ErrDevUpstreamRequestBuild    = "failed to build upstream request"
	ErrDevUpstreamRequestSend     = "failed to send upstream request"
	ErrDevUpstreamBadStatusFormat = "upstream responded with status %d"
	ErrDevUpstreamDecode          = "failed to decode upstream payload"
	ErrDevUpstreamInvalidSchedule = "upstream payload failed schedule validation"
	ErrDevCompileCalendar         = "failed to compile calendar document"
	ErrDevServerDeadlineExceeded  = "server deadline exceeded"
	ErrDevRedisGetFormat          = "failed to get redis key %s"
	ErrDevRedisSetData            = "failed to set data to redis"
	ErrDevRedisDeleteData         = "failed to delete data from redis"
	ErrDevRedisUnlock             = "failed to release redis lock"
	ErrDevCannotMarshalJSON       = "cannot marshal JSON"
	ErrDevCannotParseJSON         = "cannot parse JSON"
)
