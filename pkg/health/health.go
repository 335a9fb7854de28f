package health

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/i18nroutes/pkg/logger"
)

const (
	defaultTimeout = 5 * time.Second

	// StatusHealthy indicates all checks passed.
	StatusHealthy = "healthy"
	// StatusUnhealthy indicates one or more checks failed.
	StatusUnhealthy = "unhealthy"
)

// ErrCheckTimeout is reported for a check that outlives the timeout.
var ErrCheckTimeout = errors.New("health: check timeout")

// Checks maps names to readiness checks, e.g. the Redis store behind the
// first-access tracker.
type Checks map[string]func(ctx context.Context) error

// Report is the aggregated result of a readiness run.
type Report struct {
	Status string            `json:"status"`
	Checks map[string]Result `json:"checks,omitempty"`
}

// Result is the outcome of one check.
type Result struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Healthy reports whether every check passed.
func (r Report) Healthy() bool {
	return r.Status == StatusHealthy
}

type config struct {
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures readiness checks.
type Option func(*config)

// WithTimeout bounds the whole run. Default: 5s.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger logs failed checks at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Run executes all checks concurrently.
func Run(ctx context.Context, checks Checks, opts ...Option) Report {
	cfg := &config{timeout: defaultTimeout, logger: logger.NewNope()}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(checks) == 0 {
		return Report{Status: StatusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		results = make(map[string]Result, len(checks))
		status  = StatusHealthy
	)

	var wg sync.WaitGroup
	for name, check := range checks {
		wg.Go(func() {
			res := Result{Status: StatusHealthy}
			if err := check(ctx); err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					err = errors.Join(ErrCheckTimeout, err)
				}
				res = Result{Status: StatusUnhealthy, Error: err.Error()}
				cfg.logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.Any("error", err),
				)
			}

			mu.Lock()
			results[name] = res
			if res.Status == StatusUnhealthy {
				status = StatusUnhealthy
			}
			mu.Unlock()
		})
	}
	wg.Wait()

	return Report{Status: status, Checks: results}
}
