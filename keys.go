package qparams

type Key string

const (
	// QueryValuesKey stashes the query params extracted for an HTTP request.
	QueryValuesKey Key = "QueryValuesKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "qparams context key: " + string(k)
}
