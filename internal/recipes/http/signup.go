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

type SignupHandler struct {
	Users    *service.UserService
	Sessions *sessionx.Manager
}

// ServeHTTP godoc
//
//	@Summary		Sign up
//	@Description	Create a new user account and establish an authenticated session.
//	@Description	The response never contains the credential hash.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		signupRequest			true	"username, password, bio?, image_url?"
//	@Success		201		{object}	domain.PublicUser		"created user"
//	@Failure		422		{object}	httpx.ErrorResponse		"missing fields or duplicate username"
//	@Router			/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	// Schema gate: missing username or password fails before any store call.
	if err := validate.Struct(req); err != nil {
		metrics.SignupsTotal.WithLabelValues("rejected").Inc()
		httpx.WriteError(w, http.StatusUnprocessableEntity, "Username and password are required")
		return
	}

	user, err := h.Users.SignUp(ctx, service.SignUpParams{
		Username: req.Username,
		Password: req.Password,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			metrics.SignupsTotal.WithLabelValues("rejected").Inc()
			httpx.WriteError(w, http.StatusUnprocessableEntity, "Username and password are required")
		case errors.Is(err, service.ErrUsernameTaken):
			metrics.SignupsTotal.WithLabelValues("rejected").Inc()
			httpx.WriteError(w, http.StatusUnprocessableEntity, "Username already exists")
		default:
			log.Error("signup failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	// Establish the authenticated session for the new user.
	if err := h.Sessions.Issue(w, user.ID); err != nil {
		log.Error("failed to issue session", "user_id", user.ID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	httpx.WriteJSON(w, http.StatusCreated, user.Public())
}
