package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated user's id through the request context.
const CtxKeyUserID ctxKey = "user_id"

// UserIDFromContext returns the authenticated user id injected by the session
// middleware, or "" if the request is anonymous.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
