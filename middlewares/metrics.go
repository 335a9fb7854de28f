package middlewares

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/i18nroutes/pkg/detect"
)

// Metrics counts locale detections and redirects.
// A nil *Metrics records nothing.
type Metrics struct {
	detections *prometheus.CounterVec
	redirects  *prometheus.CounterVec
}

// NewMetrics registers the locale metrics on reg.
// It panics when the metrics are already registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		detections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "i18nroutes",
			Name:      "detections_total",
			Help:      "Total number of browser locale detections by source and reason",
		}, []string{"from", "reason"}),
		redirects: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "i18nroutes",
			Name:      "redirects_total",
			Help:      "Total number of locale redirects by target locale",
		}, []string{"locale"}),
	}
}

func (m *Metrics) detected(res detect.Result) {
	if m == nil {
		return
	}
	m.detections.WithLabelValues(string(res.From), string(res.Reason)).Inc()
}

func (m *Metrics) redirected(locale string) {
	if m == nil {
		return
	}
	m.redirects.WithLabelValues(locale).Inc()
}
