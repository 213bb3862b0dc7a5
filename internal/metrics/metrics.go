// SPDX-License-Identifier: MIT

// Package metrics records solver outcomes in a private Prometheus registry
// and exports them in the node-exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MEGORD/t-methods-calculator/modi"
)

const namespace = "tmethods"

// Recorder holds the solver metrics.
type Recorder struct {
	registry *prometheus.Registry

	solves     *prometheus.CounterVec   // method, status
	iterations *prometheus.HistogramVec // method
	duration   *prometheus.HistogramVec // method
	planCost   *prometheus.GaugeVec     // stage: initial | final
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.solves = r.newCounterVec(prometheus.CounterOpts{
		Name: "solves_total",
		Help: "Solve calls by method and terminal status.",
	}, []string{"method", "status"})

	r.iterations = r.newHistogramVec(prometheus.HistogramOpts{
		Name:    "iterations",
		Help:    "Pivots applied per solve.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"method"})

	r.duration = r.newHistogramVec(prometheus.HistogramOpts{
		Name:    "solve_duration_seconds",
		Help:    "Wall-clock time per solve.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	r.planCost = r.newGaugeVec(prometheus.GaugeOpts{
		Name: "plan_cost",
		Help: "Total shipping cost of the last plan.",
	}, []string{"stage"})

	return r
}

func (r *Recorder) newCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	opts.Namespace = namespace
	cv := prometheus.NewCounterVec(opts, labels)
	r.registry.MustRegister(cv)

	return cv
}

func (r *Recorder) newGaugeVec(opts prometheus.GaugeOpts, labels []string) *prometheus.GaugeVec {
	opts.Namespace = namespace
	gv := prometheus.NewGaugeVec(opts, labels)
	r.registry.MustRegister(gv)

	return gv
}

func (r *Recorder) newHistogramVec(opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	opts.Namespace = namespace
	hv := prometheus.NewHistogramVec(opts, labels)
	r.registry.MustRegister(hv)

	return hv
}

// Observe records one finished solve. A Result without a plan (rejected
// input or options) only counts toward solves_total with status "failed".
func (r *Recorder) Observe(method modi.Method, res modi.Result, elapsed time.Duration) {
	m := method.String()
	if res.Plan == nil {
		r.solves.WithLabelValues(m, modi.StatusFailed.String()).Inc()

		return
	}
	r.solves.WithLabelValues(m, res.Status.String()).Inc()
	r.iterations.WithLabelValues(m).Observe(float64(res.Iterations))
	r.duration.WithLabelValues(m).Observe(elapsed.Seconds())
	r.planCost.WithLabelValues("initial").Set(float64(res.InitialCost))
	r.planCost.WithLabelValues("final").Set(float64(res.Cost))
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the current metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
