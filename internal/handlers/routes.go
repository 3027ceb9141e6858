package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var Module = fx.Module("handlers",
	fx.Provide(NewPages),
	fx.Invoke(RegisterRoutes),
)

// RegisterRoutes registers the page routes
func RegisterRoutes(r chi.Router, p *Pages) {
	r.Get("/", p.LandingPage)
	r.Get("/health", p.Health)
	r.Get("/structured-data/services.json", p.ServicesData)
	r.Get("/structured-data/case-studies.json", p.CaseStudiesData)
	r.Handle("/metrics", promhttp.Handler())
}
