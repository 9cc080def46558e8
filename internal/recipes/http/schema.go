package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/potlucklabs/potluck/internal/recipes/domain"
)

// validate holds the request schema rules. Handlers run it after decoding
// and before any service call, so malformed input never reaches the store.
var validate = validator.New()

var errBadJSON = errors.New("invalid JSON body")

type signupRequest struct {
	Username string `json:"username"  validate:"required"`
	Password string `json:"password"  validate:"required"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createRecipeRequest struct {
	Title             string `json:"title"        validate:"required"`
	Instructions      string `json:"instructions" validate:"required,min=50"`
	MinutesToComplete int    `json:"minutes_to_complete"`
}

// recipeResponse serializes a recipe with its owner's public summary embedded.
type recipeResponse struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Instructions      string            `json:"instructions"`
	MinutesToComplete int               `json:"minutes_to_complete"`
	User              domain.PublicUser `json:"user"`
}

func newRecipeResponse(rec domain.Recipe, owner domain.User) recipeResponse {
	return recipeResponse{
		ID:                rec.ID,
		Title:             rec.Title,
		Instructions:      rec.Instructions,
		MinutesToComplete: rec.MinutesToComplete,
		User:              owner.Public(),
	}
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`

	Database string `json:"database,omitempty"`
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadJSON
	}
	return nil
}
