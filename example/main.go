package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dmitrymomot/i18nroutes"
	"github.com/dmitrymomot/i18nroutes/pkg/logger"
	"github.com/dmitrymomot/i18nroutes/pkg/route"
)

//go:embed pages
var pages embed.FS

func main() {
	ctx := context.Background()
	log := logger.MustNew(logger.Config{Format: logger.FormatText, Level: "debug"},
		i18nroutes.LocaleExtractor(),
		i18nroutes.RequestIDExtractor(),
	)

	routes, err := route.Scan(pages, "pages")
	if err != nil {
		log.Error("scan pages", slog.Any("error", err))
		os.Exit(1)
	}

	cfg := i18nroutes.Defaults()
	cfg.DefaultLocale = "en"
	cfg.Locales = []i18nroutes.Locale{
		{Code: "en", Language: "en-US"},
		{Code: "fr", Language: "fr-FR"},
		{Code: "de", Language: "de-DE"},
	}

	engine, err := i18nroutes.New(cfg,
		i18nroutes.WithLogger(log),
		i18nroutes.WithPagesFS(pages),
	)
	if err != nil {
		log.Error("create engine", slog.Any("error", err))
		os.Exit(1)
	}

	h, err := engine.Handler(ctx, routes, servePage(pages))
	if err != nil {
		log.Error("build handler", slog.Any("error", err))
		os.Exit(1)
	}

	if err := engine.Serve(h,
		i18nroutes.Address(getEnv("ADDRESS", ":8080")),
		i18nroutes.ShutdownTimeout(10*time.Second),
	); err != nil {
		log.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

// servePage renders the page file behind each localized route.
func servePage(fsys fs.FS) i18nroutes.HandlerFor {
	return func(e i18nroutes.RouteEntry) http.Handler {
		if e.Node.File == "" {
			return nil
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if locale, ok := i18nroutes.LocaleFromContext(r.Context()); ok {
				w.Header().Set("Content-Language", locale)
			}
			http.ServeFileFS(w, r, fsys, e.Node.File)
		})
	}
}

// getEnv returns environment variable value or default if not set.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
