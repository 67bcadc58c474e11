package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"demoready/internal/adapters/http/checks"
	"demoready/internal/adapters/http/health"
	"demoready/internal/adapters/http/runs"
	"demoready/internal/config"
	"demoready/internal/platform/logger"
	"demoready/internal/platform/metrics"
	platformMiddleware "demoready/internal/platform/middleware"
)

type RouterDependencies struct {
	Config           *config.HttpConfig
	Logger           logger.Logger
	RunsHandler      *runs.Handler
	ChecksHandler    *checks.Handler
	LivenessHandler  *health.LivenessHandler
	ReadinessHandler *health.ReadinessHandler
	MetricsProvider  *metrics.Provider
}

func NewRouter(deps RouterDependencies) http.Handler {
	cfg := deps.Config
	log := deps.Logger
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(platformMiddleware.RequestLogger(log, "/health", "/metrics"))
	r.Use(platformMiddleware.MetricsMiddleware(deps.MetricsProvider))
	r.Use(platformMiddleware.Recovery(log))
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Use(httprate.LimitAll(cfg.RateLimit.GlobalRequests, cfg.RateLimit.GlobalWindow))
	r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerIP, cfg.RateLimit.IPWindow))

	r.Get("/health/live", deps.LivenessHandler.Check)
	r.Get("/health/ready", deps.ReadinessHandler.Check)

	r.Handle("/metrics", deps.MetricsProvider.Handler())

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Route("/runs", func(runsRouter chi.Router) {
			runsRouter.Post("/", ErrorHandler(deps.RunsHandler.CreateRun))
			runsRouter.Get("/", ErrorHandler(deps.RunsHandler.ListRuns))
			runsRouter.Get("/{id}", ErrorHandler(deps.RunsHandler.GetRun))
		})
		apiRouter.Route("/checks", func(checksRouter chi.Router) {
			checksRouter.Get("/", ErrorHandler(deps.ChecksHandler.ListChecks))
			checksRouter.Get("/{name}", ErrorHandler(deps.ChecksHandler.RunCheck))
		})
	})

	return r
}
