package httpx

import (
	"context"
	"net/http"

	"github.com/potlucklabs/potluck/pkg/sessionx"
)

// SessionMiddleware resolves the session cookie into an authenticated user id
// and injects it into the request context. Anonymous requests are rejected
// with 401 and the shared error envelope; the session is trusted only for the
// user id it carries, no credential re-verification happens here.
func SessionMiddleware(sessions *sessionx.Manager) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sessions.UserID(r)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), CtxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
