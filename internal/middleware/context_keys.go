package middleware

// contextKey is a private key type for request-context values. Using a
// custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	subjectKey   = contextKey("subject")
)
