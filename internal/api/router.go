package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/markdave123-py/textract-api/internal/api/handlers"
	appMiddleware "github.com/markdave123-py/textract-api/internal/api/middlewares"
)

type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
	JWTSecret      string
}

// NewRouter builds the route tree. Upload auth is enabled only when a JWT secret is configured.
func NewRouter(cfg RouterConfig, upload *handlers.UploadHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appMiddleware.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", handlers.Health)

	r.Route("/api", func(api chi.Router) {
		api.Group(func(g chi.Router) {
			if cfg.JWTSecret != "" {
				g.Use(appMiddleware.JWTMiddleware(cfg.JWTSecret))
			}
			g.Post("/upload", upload.Upload)
		})
	})

	return r
}
