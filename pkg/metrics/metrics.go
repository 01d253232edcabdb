// Package metrics exposes Prometheus collectors for submissions and the
// outbound Birdeye call.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder records relay metrics. A nil *Recorder is valid and records nothing.
type Recorder struct {
	submissions *prometheus.CounterVec
	upstream    *prometheus.HistogramVec
}

// New registers the relay collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "birdeye_relay",
			Name:      "submissions_total",
			Help:      "Contact submissions handled, by outcome.",
		}, []string{"outcome"}),
		upstream: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "birdeye_relay",
			Name:      "upstream_duration_seconds",
			Help:      "Duration of the outbound Birdeye call, by response status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}
	r.submissions = register(reg, r.submissions)
	r.upstream = register(reg, r.upstream)
	return r
}

// register returns the already registered collector if one exists.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

// ObserveSubmission counts one handled submission.
func (r *Recorder) ObserveSubmission(outcome string) {
	if r == nil {
		return
	}
	r.submissions.WithLabelValues(outcome).Inc()
}

// ObserveUpstream records one outbound call. status is 0 on transport failure.
func (r *Recorder) ObserveUpstream(status int, d time.Duration) {
	if r == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	r.upstream.WithLabelValues(label).Observe(d.Seconds())
}

// NewRegistry returns a registry with the process and Go runtime collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return reg
}

// Handler serves the exposition format for reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
