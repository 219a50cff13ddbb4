package common

type contextKey string

const (
	TraceIdKey        contextKey = "trace_id"
	SessionContextKey contextKey = "session_id"
	RemoteIPKey       contextKey = "remote_ip"
)

// SessionIDFromLocals accepts whatever fiber stored under SessionContextKey.
func SessionIDFromLocals(v interface{}) string {
	id, ok := v.(string)
	if !ok {
		return ""
	}
	return id
}
