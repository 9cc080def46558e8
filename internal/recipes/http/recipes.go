package http

import (
	"errors"
	"net/http"

	"github.com/potlucklabs/potluck/internal/recipes/metrics"
	"github.com/potlucklabs/potluck/internal/recipes/service"
	"github.com/potlucklabs/potluck/pkg/httpx"
	"github.com/potlucklabs/potluck/pkg/slogx"
)

// RecipesHandler serves the combined list+create recipe resource.
type RecipesHandler struct {
	Users   *service.UserService
	Recipes *service.RecipeService
}

// HandleList godoc
//
//	@Summary		List recipes
//	@Description	Return every recipe owned by the current user, each with the
//	@Description	owner's public summary embedded. Other users' recipes are
//	@Description	never visible.
//	@Tags			Recipes
//	@Produce		json
//	@Success		200	{array}		recipeResponse		"owned recipes"
//	@Failure		401	{object}	httpx.ErrorResponse	"no active session"
//	@Failure		404	{object}	httpx.ErrorResponse	"session references a missing user"
//	@Router			/recipes [get].
func (h *RecipesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)

	owner, err := h.Users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error("failed to load session user", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	recipes, err := h.Recipes.ListForOwner(ctx, owner.ID)
	if err != nil {
		log.Error("failed to list recipes", "user_id", owner.ID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Serialize as [] rather than null when the user owns nothing.
	out := make([]recipeResponse, 0, len(recipes))
	for _, rec := range recipes {
		out = append(out, newRecipeResponse(rec, owner))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Create recipe
//	@Description	Create a recipe owned by the current user. Instructions must
//	@Description	be at least 50 characters; minutes_to_complete defaults to 0.
//	@Tags			Recipes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		createRecipeRequest	true	"title, instructions, minutes_to_complete?"
//	@Success		201		{object}	recipeResponse		"created recipe"
//	@Failure		401		{object}	httpx.ErrorResponse	"no active session"
//	@Failure		422		{object}	httpx.ErrorResponse	"invalid recipe data"
//	@Router			/recipes [post].
func (h *RecipesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)

	var req createRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	// Schema gate before any store call; the entity layer re-checks the same
	// rules and the database carries them once more as a safety net.
	if err := validate.Struct(req); err != nil {
		metrics.RecipesRejectedTotal.Inc()
		httpx.WriteError(w, http.StatusUnprocessableEntity, "Invalid recipe data")
		return
	}

	recipe, err := h.Recipes.Create(ctx, userID, service.CreateRecipeParams{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidRecipe) {
			metrics.RecipesRejectedTotal.Inc()
			httpx.WriteError(w, http.StatusUnprocessableEntity, "Invalid recipe data")
			return
		}
		log.Error("failed to create recipe", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	owner, err := h.Users.GetUserByID(ctx, userID)
	if err != nil {
		log.Error("failed to load recipe owner", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	metrics.RecipesCreatedTotal.Inc()
	httpx.WriteJSON(w, http.StatusCreated, newRecipeResponse(recipe, owner))
}
