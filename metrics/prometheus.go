// Package metrics provides a mlfqsched.MetricsHook backed by
// prometheus/client_golang, instrumenting admissions, dispatches,
// preemptions and aging events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ironmancool/mlfqsched"
)

// PrometheusHook implements mlfqsched.MetricsHook using a small set of
// counters and gauges registered against the supplied registerer.
type PrometheusHook struct {
	admissions *prometheus.CounterVec
	dispatches prometheus.Counter
	preempts   prometheus.Counter
	ranTicks   prometheus.Histogram
	ageEvents  *prometheus.CounterVec
	queueDepth *prometheus.GaugeVec

	depth map[mlfqsched.Band]int
}

// NewPrometheusHook registers its metrics against reg and returns a ready
// to use hook. Passing prometheus.NewRegistry() (rather than the global
// DefaultRegisterer) keeps metrics scoped to a single scheduler instance,
// which matters for the CLI driver and for tests that construct more than
// one scheduler.
func NewPrometheusHook(reg prometheus.Registerer) *PrometheusHook {
	h := &PrometheusHook{
		admissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mlfqsched",
			Name:      "admissions_total",
			Help:      "Total thread admissions into the ready set, by band.",
		}, []string{"band"}),
		dispatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mlfqsched",
			Name:      "dispatches_total",
			Help:      "Total dispatches performed by Run.",
		}),
		preempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mlfqsched",
			Name:      "preemptions_total",
			Help:      "Total times a running thread was replaced by Run.",
		}),
		ranTicks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mlfqsched",
			Name:      "ticks_run",
			Help:      "Ticks executed by a thread between dispatch and replacement.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		ageEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mlfqsched",
			Name:      "aging_events_total",
			Help:      "Total priority-aging events, by resulting band.",
		}, []string{"band"}),
		queueDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "mlfqsched",
			Name:      "queue_depth",
			Help:      "Current number of ready threads, by band.",
		}, []string{"band"}),
		depth: make(map[mlfqsched.Band]int),
	}

	reg.MustRegister(h.admissions, h.dispatches, h.preempts, h.ranTicks, h.ageEvents, h.queueDepth)
	return h
}

func bandLabel(b mlfqsched.Band) string {
	switch b {
	case mlfqsched.BandL1:
		return "L1"
	case mlfqsched.BandL2:
		return "L2"
	default:
		return "L3"
	}
}

func (h *PrometheusHook) OnAdmit(_ *mlfqsched.Thread, band mlfqsched.Band) {
	h.admissions.WithLabelValues(bandLabel(band)).Inc()
	h.depth[band]++
	h.queueDepth.WithLabelValues(bandLabel(band)).Set(float64(h.depth[band]))
}

func (h *PrometheusHook) OnDispatch(t *mlfqsched.Thread, _ int64) {
	h.dispatches.Inc()
	band := t.Priority.Band()
	if h.depth[band] > 0 {
		h.depth[band]--
	}
	h.queueDepth.WithLabelValues(bandLabel(band)).Set(float64(h.depth[band]))
}

func (h *PrometheusHook) OnPreempt(_ *mlfqsched.Thread, ranTicks int64) {
	h.preempts.Inc()
	h.ranTicks.Observe(float64(ranTicks))
}

func (h *PrometheusHook) OnAge(_ *mlfqsched.Thread, from, to mlfqsched.Priority) {
	h.ageEvents.WithLabelValues(bandLabel(to.Band())).Inc()

	// A thread that ages across a band boundary migrates queues.
	if fb, tb := from.Band(), to.Band(); fb != tb {
		if h.depth[fb] > 0 {
			h.depth[fb]--
		}
		h.depth[tb]++
		h.queueDepth.WithLabelValues(bandLabel(fb)).Set(float64(h.depth[fb]))
		h.queueDepth.WithLabelValues(bandLabel(tb)).Set(float64(h.depth[tb]))
	}
}
