package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/miix-automations/website/internal/components"
	"github.com/miix-automations/website/internal/config"
	"github.com/miix-automations/website/internal/content"
	"github.com/miix-automations/website/internal/logger"
	"github.com/miix-automations/website/internal/metrics"
	"github.com/miix-automations/website/internal/seo"
)

// Pages serves the landing page and its satellites.
type Pages struct {
	cfg     *config.Config
	log     *slog.Logger
	now     func() time.Time
	startAt time.Time
}

func NewPages(cfg *config.Config, log *slog.Logger) *Pages {
	return &Pages{
		cfg:     cfg,
		log:     log.With(logger.Scope("handlers")),
		now:     time.Now,
		startAt: time.Now(),
	}
}

// LandingConfig returns the composition settings for a render at now.
func LandingConfig(cfg *config.Config, now time.Time) components.LandingConfig {
	site := strings.TrimSuffix(cfg.SiteURL, "/")
	return components.LandingConfig{
		Page: components.PageConfig{
			Title:        content.Brand.Title,
			Description:  content.Brand.Description,
			Theme:        cfg.Theme,
			OGImage:      site + "/static/images/og-image.svg",
			CanonicalURL: site + "/",
		},
		SiteURL: site,
		Year:    now.Year(),
		Motion:  cfg.Motion.Settings(),
	}
}

func (p *Pages) LandingPage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	page, err := components.Landing(LandingConfig(p.cfg, p.now()))
	if err == nil {
		var buf bytes.Buffer
		if err = page.Render(&buf); err == nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = buf.WriteTo(w)
		}
	}
	metrics.ObserveRender("landing", start, err)

	if err != nil {
		p.log.Error("render landing page", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (p *Pages) ServicesData(w http.ResponseWriter, r *http.Request) {
	org := seo.NewOrganization(content.Brand.Name, strings.TrimSuffix(p.cfg.SiteURL, "/"))
	p.writeJSON(w, "application/ld+json", seo.ServicesList(org, content.Services()))
}

func (p *Pages) CaseStudiesData(w http.ResponseWriter, r *http.Request) {
	org := seo.NewOrganization(content.Brand.Name, strings.TrimSuffix(p.cfg.SiteURL, "/"))
	p.writeJSON(w, "application/ld+json", seo.CaseStudiesList(org, content.CaseStudies()))
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}

func (p *Pages) Health(w http.ResponseWriter, r *http.Request) {
	p.writeJSON(w, "application/json", HealthResponse{
		Status:    "ok",
		Timestamp: p.now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(p.startAt).Round(time.Second).String(),
	})
}

func (p *Pages) writeJSON(w http.ResponseWriter, contentType string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		p.log.Error("encode response", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
