package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/i18nroutes"
	"github.com/dmitrymomot/i18nroutes/pkg/cache"
	"github.com/dmitrymomot/i18nroutes/pkg/detect"
	"github.com/dmitrymomot/i18nroutes/pkg/health"
	"github.com/dmitrymomot/i18nroutes/pkg/logger"
)

// serveEnv is the server configuration read from the environment.
type serveEnv struct {
	Addr          string        `env:"ADDR" envDefault:":8080"`
	RedisURL      string        `env:"REDIS_URL"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	Log           logger.Config
}

func serveCmd() *cobra.Command {
	var (
		src     source
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve page files on their localized routes",
		Long: `Serve the page files of a pages directory on their localized routes,
with browser locale detection and redirects.

Environment:
  ADDR            listen address (default :8080)
  REDIS_URL       share first-access tracking through Redis, checked by /readyz
  SESSION_SECRET  sign the visitor session cookie (32+ bytes)
  LOG_FORMAT      json or text
  LOG_LEVEL       debug, info, warn or error
  SENTRY_DSN      report warnings and errors to Sentry`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if src.pages == "" && src.routes == "" {
				src.pages = "pages"
			}
			return serve(cmd.Context(), src, metrics)
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVar(&metrics, "metrics", true, "Expose Prometheus metrics on /metrics")

	return cmd
}

func serve(ctx context.Context, src source, metrics bool) error {
	var senv serveEnv
	if err := env.Parse(&senv); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	log, err := logger.New(senv.Log, i18nroutes.LocaleExtractor(), i18nroutes.RequestIDExtractor())
	if err != nil {
		return err
	}
	defer logger.Flush(2 * time.Second)

	cfg, err := src.config()
	if err != nil {
		return err
	}
	routes, err := src.load()
	if err != nil {
		return err
	}

	fsys := os.DirFS(src.root)
	opts := []i18nroutes.Option{
		i18nroutes.WithLogger(log),
		i18nroutes.WithPagesFS(fsys),
		i18nroutes.WithSessionSecret(senv.SessionSecret),
	}
	if metrics {
		opts = append(opts, i18nroutes.WithMetrics(prometheus.DefaultRegisterer))
	}

	var (
		runOpts []i18nroutes.RunOption
		checks  = health.Checks{}
	)
	if senv.RedisURL != "" {
		client, err := cache.OpenRedis(ctx, senv.RedisURL)
		if err != nil {
			return err
		}
		checks["redis"] = cache.RedisHealthcheck(client)

		store := cache.NewRedis[bool](client, nil, cache.WithPrefix("i18nroutes"))
		opts = append(opts, i18nroutes.WithTracker(detect.NewCacheTracker(store, senv.SessionTTL)))
		runOpts = append(runOpts, i18nroutes.ShutdownHook(func(context.Context) error {
			return client.Close()
		}))
	}

	engine, err := i18nroutes.New(cfg, opts...)
	if err != nil {
		return err
	}

	h, err := engine.Handler(ctx, routes, func(e i18nroutes.RouteEntry) http.Handler {
		if e.Node.File == "" {
			return nil
		}
		file := e.Node.File
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if locale, ok := i18nroutes.LocaleFromContext(r.Context()); ok {
				w.Header().Set("Content-Language", locale)
			}
			http.ServeFileFS(w, r, fsys, file)
		})
	})
	if err != nil {
		return err
	}

	root := chi.NewRouter()
	root.Get("/healthz", health.LivenessHandler())
	root.Get("/readyz", health.ReadinessHandler(checks, health.WithLogger(log), health.WithTimeout(2*time.Second)))
	if metrics {
		root.Handle("/metrics", promhttp.Handler())
	}
	root.Mount("/", h)

	runOpts = append(runOpts,
		i18nroutes.Address(senv.Addr),
		i18nroutes.WithContext(ctx),
	)
	return engine.Serve(root, runOpts...)
}
