package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Qayoomitcourse/Airport-Pass-Management/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware, registry *prometheus.Registry) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Post("/passes", h.CreatePass)
			r.Put("/passes", h.UpdatePass)
			r.Delete("/passes", h.DeletePasses)

			r.Get("/passes/details", h.GetPass)
			r.Get("/passes/batch", h.PassesBatch)
			r.Get("/passes/list", h.GetPassesList)
			r.Get("/passes/stats", h.Stats)

			r.Post("/passes/import", h.BulkImport)
			r.Post("/passes/import/historical", h.HistoricalImport)
		})
	})

	return router
}
