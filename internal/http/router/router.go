package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/medicine-inventory/docs"
	"github.com/rogerio-castellano/medicine-inventory/internal/http/handlers"
	mw "github.com/rogerio-castellano/medicine-inventory/internal/http/middleware"
	rl "github.com/rogerio-castellano/medicine-inventory/internal/http/rate_limiter"
	"github.com/rogerio-castellano/medicine-inventory/internal/http/response"
)

// Options toggles the optional parts of the HTTP stack.
type Options struct {
	AllowedOrigins []string
	// Visitors enables per-client rate limiting when not nil.
	Visitors *rl.Visitors
	// JWTSecret enables the bearer token guard on data endpoints when set.
	JWTSecret      string
	SwaggerEnabled bool
}

func notFound(w http.ResponseWriter, r *http.Request) {
	response.Error(w, nil, response.NotFound(response.MsgEndpointNotFound))
}

func NewRouter(s *handlers.Server, log *zap.Logger, opts Options) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(log))
	r.Use(mw.Recoverer(log))
	r.Use(chimw.StripSlashes)
	r.Use(chimw.GetHead)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	if opts.Visitors != nil {
		r.Use(mw.RateLimit(opts.Visitors))
	}

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/", s.IndexHandler)
	r.Get("/health", s.HealthHandler)
	if opts.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	var guard []func(http.Handler) http.Handler
	if opts.JWTSecret != "" {
		guard = append(guard, mw.Auth([]byte(opts.JWTSecret)))
	}
	api := r.With(guard...)

	api.Get("/medicines", s.ListMedicinesHandler)
	api.Get("/medicines/low-stock", s.LowStockHandler)
	api.Get("/medicines/low-stock/list", s.LowStockHandler)
	api.Get("/medicines/expiring-soon", s.ExpiringSoonHandler)
	api.Get("/medicines/expiring-soon/list", s.ExpiringSoonHandler)
	api.Get("/medicines/expiry-summary", s.ExpirySummaryHandler)
	api.Get("/medicines/expiry-summary/overview", s.ExpirySummaryHandler)
	api.Get("/medicines/{id}", s.GetMedicineHandler)
	api.Get("/medicines/{id}/batches", s.GetMedicineBatchesHandler)

	api.Get("/transactions", s.ListTransactionsHandler)
	api.Get("/transactions/{id}", s.GetTransactionHandler)

	return r
}
