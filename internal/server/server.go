package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"

	"github.com/miix-automations/website/internal/config"
	"github.com/miix-automations/website/internal/logger"
	"github.com/miix-automations/website/static"
)

var Module = fx.Module("server",
	fx.Provide(
		NewRouter,
		NewHTTPServer,
	),
	fx.Invoke(StartServer),
)

// NewRouter creates the chi router with the middleware stack and the
// embedded static files. Page routes are registered by the handlers module.
func NewRouter(log *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		RequestLogger(log.With(logger.Scope("http"))),
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.With(CacheControl("public, max-age=3600")).
		Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))

	return r
}

// RequestLogger logs one line per request. Health checks are skipped.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("uri", r.RequestURI),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("latency", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			}
			if status >= http.StatusInternalServerError {
				log.Error("request failed", attrs...)
				return
			}
			log.Info("request", attrs...)
		})
	}
}

// CacheControl sets the Cache-Control header on every response.
func CacheControl(value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", value)
			next.ServeHTTP(w, r)
		})
	}
}

func NewHTTPServer(cfg *config.Config, r chi.Router) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, server *http.Server, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}

			log.Info("starting HTTP server",
				slog.String("address", ln.Addr().String()),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
