package constants

const (
	MsgInvalidRequest   = "Invalid request"
	MsgInvalidBody      = "Invalid request body"
	MsgNotFound         = "Resource not found"
	MsgConflict         = "Request conflicts with stored data"
	MsgNoChanges        = "No fields supplied for update"
	MsgStoreUnavailable = "Database unavailable"
	MsgInternal         = "Internal error"
	MsgTooManyRequests  = "Too many requests"
)
