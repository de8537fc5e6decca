package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openmarket-kr/openmarket-backend/api/controllers"
	"github.com/openmarket-kr/openmarket-backend/api/middleware"
	"github.com/openmarket-kr/openmarket-backend/internal/auth"
	"github.com/openmarket-kr/openmarket-backend/internal/markets"
	product "github.com/openmarket-kr/openmarket-backend/internal/products"
	"github.com/openmarket-kr/openmarket-backend/pkg/auth/session"
	"github.com/openmarket-kr/openmarket-backend/pkg/config"
	"github.com/openmarket-kr/openmarket-backend/pkg/db"
	"github.com/openmarket-kr/openmarket-backend/pkg/logger"
	"github.com/openmarket-kr/openmarket-backend/pkg/metrics"
	"github.com/openmarket-kr/openmarket-backend/pkg/redis"
)

// Deps bundles everything the router needs. In production the redis client
// fills both Cache and RateLimiter.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Cache          redis.Pinger
	RateLimiter    middleware.RateLimiter
	Sessions       session.Reader
	HTTPMetrics    *metrics.HTTPMetrics
	AuthService    auth.Service
	MarketService  markets.Service
	ProductService product.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.AllowedOrigins),
	)
	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics.Middleware)
		r.Get("/metrics", deps.HTTPMetrics.Handler().ServeHTTP)
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	sessionGuard := middleware.SessionAuth(cfg.Session, deps.Sessions, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Cache))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(signupPolicy, deps.RateLimiter, logg)).
				Post("/signup", controllers.AuthSignUp(deps.AuthService, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, deps.RateLimiter, logg)).
				Post("/login", controllers.AuthLogin(deps.AuthService, cfg.Session, logg))
			r.With(sessionGuard).
				Get("/logout", controllers.AuthLogout(deps.AuthService, cfg.Session, logg))
		})

		r.With(sessionGuard).Post("/markets", controllers.MarketCreate(deps.MarketService, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductSearch(deps.ProductService, logg))
			r.Get("/{productId}", controllers.ProductDetail(deps.ProductService, logg))

			r.Group(func(r chi.Router) {
				r.Use(sessionGuard)
				r.Post("/", controllers.ProductCreate(deps.ProductService, logg))
				r.Patch("/{productId}", controllers.ProductUpdate(deps.ProductService, logg))
				r.Delete("/{productId}", controllers.ProductDelete(deps.ProductService, logg))
			})
		})
	})

	return r
}
