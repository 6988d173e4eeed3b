package router

import (
	"io/fs"
	"net/http"
	"time"

	middleware2 "github.com/Kunalsharma76/github-copilot-exercise/pkg/middleware"

	"github.com/Kunalsharma76/github-copilot-exercise/internal/handler"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(
	activityHandler *handler.ActivityHandler,
	rootHandler *handler.RootHandler,
	healthHandler *handler.HealthHandler,
	static fs.FS,
	requestTimeout time.Duration,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware2.LoggingMiddleware)
	r.Use(middleware2.MetricsMiddleware)
	r.Use(chimiddleware.Timeout(requestTimeout))

	// Swagger documentation and metrics
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", promhttp.Handler())

	// Service endpoints
	r.Head("/health", healthHandler.Health)
	r.Get("/health", healthHandler.Health)

	// Sign-up page
	r.Get("/", rootHandler.Root)
	r.Get(handler.IndexPath, rootHandler.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	// Activity endpoints
	r.Route("/activities", func(r chi.Router) {
		r.Get("/", activityHandler.ListActivities)
		r.Get("/{activity_name}", activityHandler.GetActivity)
		r.Post("/{activity_name}/signup", activityHandler.Signup)
		r.Delete("/{activity_name}/unregister", activityHandler.Unregister)
	})

	return r
}
