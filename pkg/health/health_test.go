package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nroutes/pkg/health"
)

var errDown = errors.New("down")

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checks     health.Checks
		wantStatus string
		wantFailed []string
	}{
		{name: "no checks", wantStatus: health.StatusHealthy},
		{
			name: "all pass",
			checks: health.Checks{
				"redis": func(context.Context) error { return nil },
				"store": func(context.Context) error { return nil },
			},
			wantStatus: health.StatusHealthy,
		},
		{
			name: "one fails",
			checks: health.Checks{
				"redis": func(context.Context) error { return errDown },
				"store": func(context.Context) error { return nil },
			},
			wantStatus: health.StatusUnhealthy,
			wantFailed: []string{"redis"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := health.Run(context.Background(), tt.checks)
			assert.Equal(t, tt.wantStatus, report.Status)
			for name, res := range report.Checks {
				if assert.Contains(t, tt.checks, name) && contains(tt.wantFailed, name) {
					assert.Equal(t, health.StatusUnhealthy, res.Status)
					assert.Equal(t, "down", res.Error)
				}
			}
		})
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestRun_Timeout(t *testing.T) {
	t.Parallel()

	report := health.Run(context.Background(), health.Checks{
		"slow": func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}, health.WithTimeout(10*time.Millisecond))

	require.False(t, report.Healthy())
	assert.Contains(t, report.Checks["slow"].Error, health.ErrCheckTimeout.Error())
}

func TestRun_FailureDoesNotCancelOthers(t *testing.T) {
	t.Parallel()

	report := health.Run(context.Background(), health.Checks{
		"redis": func(context.Context) error { return errDown },
		"store": func(ctx context.Context) error {
			select {
			case <-time.After(20 * time.Millisecond):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}, health.WithTimeout(time.Second))

	require.Len(t, report.Checks, 2)
	assert.Equal(t, health.StatusUnhealthy, report.Checks["redis"].Status)
	assert.Equal(t, health.StatusHealthy, report.Checks["store"].Status)
}

func TestHandlers(t *testing.T) {
	t.Parallel()

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		health.LivenessHandler()(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("readiness json", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{
			"redis": func(context.Context) error { return errDown },
		})
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		h(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var report health.Report
		require.NoError(t, json.NewDecoder(w.Body).Decode(&report))
		assert.Equal(t, health.StatusUnhealthy, report.Status)
		assert.Equal(t, "down", report.Checks["redis"].Error)
	})

	t.Run("readiness text", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		health.ReadinessHandler(nil)(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})
}
