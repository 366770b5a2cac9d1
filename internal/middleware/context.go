package middleware

// Context keys used to store request metadata.
const (
	ContextKeyPrincipal = "principal"
	ContextKeyRequestID = "request_id"
)
