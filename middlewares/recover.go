package middlewares

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/dmitrymomot/i18nroutes/pkg/logger"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// RecoverConfig configures the recover middleware.
type RecoverConfig struct {
	Logger            *slog.Logger
	StackSize         int  // Max stack trace size (default: 4096)
	DisablePrintStack bool // Disable stack trace in logs
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

// WithRecoverLogger sets the logger panics are reported to.
func WithRecoverLogger(l *slog.Logger) RecoverOption {
	return func(cfg *RecoverConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithRecoverStackSize sets the maximum stack trace size.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		if size > 0 {
			cfg.StackSize = size
		}
	}
}

// WithRecoverDisablePrintStack disables including stack trace in logs.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisablePrintStack = true
	}
}

// Recover returns middleware that recovers from panics, logs them and
// answers 500. http.ErrAbortHandler is re-panicked.
func Recover(opts ...RecoverOption) func(http.Handler) http.Handler {
	cfg := &RecoverConfig{
		Logger:    logger.NewNope(),
		StackSize: DefaultStackSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				attrs := append(requestLogAttrs(r), slog.Any("panic", rec))
				if !cfg.DisablePrintStack {
					stack := make([]byte, cfg.StackSize)
					stack = stack[:runtime.Stack(stack, false)]
					attrs = append(attrs, slog.String("stack", string(stack)))
				}
				cfg.Logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
