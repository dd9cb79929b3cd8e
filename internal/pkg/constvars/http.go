package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"

	MIMETextHTMLCharsetUTF8     = "text/html; charset=utf-8"
	MIMETextPlainCharsetUTF8    = "text/plain; charset=utf-8"
	MIMETextCalendarCharsetUTF8 = "text/calendar; charset=utf-8"
)

const (
	HeaderContentType              = "Content-Type"
	HeaderContentDisposition       = "Content-Disposition"
	HeaderAccessControlAllowOrigin = "Access-Control-Allow-Origin"
	HeaderAccept                   = "Accept"
	HeaderXRequestID               = "X-Request-ID"
	HeaderXAPIKey                  = "x-api-key"
)

const (
	StatusOK                  = 200
	StatusFound               = 302
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusRequestTimeout      = 408
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusGatewayTimeout      = 504
)

const (
	ResponseUnknown = "unknown"
)
