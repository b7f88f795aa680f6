package logkey

// Common keys used for structured logging across handlers and gateways.
const (
	TraceID = "trace_id"
	ERROR   = "error"
	URL     = "url"
	Method  = "method"
	Status  = "status"
	UserID  = "user_id"
	OrderID = "order_id"
)
