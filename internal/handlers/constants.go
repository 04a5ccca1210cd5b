package handlers

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const SessionContextKey ContextKey = "session"

const (
	ErrInvalidRequestBody  = "Invalid request body"
	ErrInternalServerError = "Internal server error"
	ErrTooManyRequests     = "Too many requests, please try again later"

	// maxBodyBytes bounds every JSON request body
	maxBodyBytes = 1 << 20
)
