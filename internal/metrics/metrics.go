// Package metrics exposes Prometheus counters for profile and palette activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "beauty"

// Recorder holds the registered collectors. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	gatherer prometheus.Gatherer

	profilesCreated    prometheus.Counter
	palettesGenerated  *prometheus.CounterVec
	paletteErrors      *prometheus.CounterVec
	harmonyRelaxations *prometheus.CounterVec
	undertoneConf      prometheus.Histogram
}

// New registers every collector on reg. A nil reg gets a private registry.
func New(reg *prometheus.Registry) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	auto := promauto.With(reg)

	return &Recorder{
		gatherer: reg,
		profilesCreated: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_created_total",
			Help:      "Total number of profiles created or replaced",
		}),
		palettesGenerated: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "palettes_generated_total",
			Help:      "Total number of palettes generated by palette type",
		}, []string{"type"}),
		paletteErrors: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "palette_errors_total",
			Help:      "Failed palette requests by error kind",
		}, []string{"kind"}),
		harmonyRelaxations: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "harmony_relaxations_total",
			Help:      "Selections that could not include a neutral",
		}, []string{"season", "type"}),
		undertoneConf: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "undertone_confidence",
			Help:      "Distribution of undertone verdict confidence",
			Buckets:   []float64{0.25, 0.4, 0.5, 0.55, 0.6, 0.7, 0.8, 0.9, 1},
		}),
	}
}

func (r *Recorder) ProfileCreated(confidence float64) {
	if r == nil {
		return
	}
	r.profilesCreated.Inc()
	r.undertoneConf.Observe(confidence)
}

func (r *Recorder) PaletteGenerated(paletteType string) {
	if r == nil {
		return
	}
	r.palettesGenerated.WithLabelValues(paletteType).Inc()
}

func (r *Recorder) PaletteError(kind string) {
	if r == nil {
		return
	}
	r.paletteErrors.WithLabelValues(kind).Inc()
}

func (r *Recorder) HarmonyRelaxed(season, paletteType string) {
	if r == nil {
		return
	}
	r.harmonyRelaxations.WithLabelValues(season, paletteType).Inc()
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
