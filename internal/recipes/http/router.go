package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/potlucklabs/potluck/internal/recipes/service"
	"github.com/potlucklabs/potluck/internal/recipes/store"
	"github.com/potlucklabs/potluck/pkg/httpx"
	"github.com/potlucklabs/potluck/pkg/sessionx"
	"github.com/potlucklabs/potluck/pkg/slogx"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/potlucklabs/potluck/api/recipes" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	sessions     *sessionx.Manager
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	UserService   *service.UserService
	RecipeService *service.RecipeService
}

func NewRouter(
	sessions *sessionx.Manager,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		sessions:     sessions,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerRecipes()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Potluck Recipe API
//	@version		0.1.0
//	@description	Session-cookie-authenticated recipe sharing backend. Signup and
//	@description	login establish a signed session cookie; recipes are private to
//	@description	their owner.
//
//	@contact.name	Potluck Labs
//	@contact.url	https://github.com/potlucklabs/potluck
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	signupHandler := &SignupHandler{
		Users:    r.UserService,
		Sessions: r.sessions,
	}
	sessionHandler := &SessionHandler{
		Users:    r.UserService,
		Sessions: r.sessions,
	}

	// POST /signup - strict rate limit by IP (public account creation)
	r.Mux.Handle("POST /signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (brute force prevention)
	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /check_session - requires a session, lenient limit (UIs poll this)
	r.Mux.Handle("GET /check_session",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleCheck),
			httpx.SessionMiddleware(r.sessions),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// DELETE /logout - requires a session; anonymous logout is a 401
	r.Mux.Handle("DELETE /logout",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleLogout),
			httpx.SessionMiddleware(r.sessions),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerRecipes() {
	h := &RecipesHandler{
		Users:   r.UserService,
		Recipes: r.RecipeService,
	}

	// GET /recipes - lenient rate limit by user
	r.Mux.Handle("GET /recipes",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.SessionMiddleware(r.sessions),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /recipes - moderate rate limit by user (write operation)
	r.Mux.Handle("POST /recipes",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.SessionMiddleware(r.sessions),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
