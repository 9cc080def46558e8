package http

import (
	"errors"
	"net/http"

	"github.com/potlucklabs/potluck/internal/recipes/metrics"
	"github.com/potlucklabs/potluck/internal/recipes/service"
	"github.com/potlucklabs/potluck/pkg/httpx"
	"github.com/potlucklabs/potluck/pkg/sessionx"
	"github.com/potlucklabs/potluck/pkg/slogx"
)

// SessionHandler owns the session lifecycle endpoints: check_session, login
// and logout.
type SessionHandler struct {
	Users    *service.UserService
	Sessions *sessionx.Manager
}

// HandleCheck godoc
//
//	@Summary		Check session
//	@Description	Return the current user for an authenticated session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	domain.PublicUser	"current user"
//	@Failure		401	{object}	httpx.ErrorResponse	"no active session"
//	@Failure		404	{object}	httpx.ErrorResponse	"session references a missing user"
//	@Router			/check_session [get].
func (h *SessionHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Session middleware already rejected anonymous requests.
	userID := httpx.UserIDFromContext(ctx)

	user, err := h.Users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// Authenticated session pointing at a user that no longer exists.
			httpx.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error("failed to load session user", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, user.Public())
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Verify credentials and establish an authenticated session.
//	@Description	Unknown usernames and wrong passwords fail identically.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest		true	"username, password"
//	@Success		200		{object}	domain.PublicUser	"logged-in user"
//	@Failure		401		{object}	httpx.ErrorResponse	"invalid username or password"
//	@Router			/login [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, err := h.Users.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		log.Error("login failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.Sessions.Issue(w, user.ID); err != nil {
		log.Error("failed to issue session", "user_id", user.ID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	httpx.WriteJSON(w, http.StatusOK, user.Public())
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Clear the session cookie. A second logout without
//	@Description	re-authenticating returns 401; logout is not idempotent.
//	@Tags			Auth
//	@Success		204	"session cleared"
//	@Failure		401	{object}	httpx.ErrorResponse	"no active session"
//	@Router			/logout [delete].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	// Session middleware already rejected anonymous requests, so all that is
	// left is the Authenticated -> Anonymous transition.
	h.Sessions.Clear(w)
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
