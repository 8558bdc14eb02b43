package mlfqsched

// MetricsHook defines hooks for monitoring admission, dispatch, preemption
// and aging events.
type MetricsHook interface {
	OnAdmit(t *Thread, band Band)
	OnDispatch(t *Thread, tick int64)
	OnPreempt(t *Thread, ranTicks int64)
	OnAge(t *Thread, from, to Priority)
}

// noopMetrics is the default MetricsHook when none is configured.
type noopMetrics struct{}

func (noopMetrics) OnAdmit(*Thread, Band)             {}
func (noopMetrics) OnDispatch(*Thread, int64)         {}
func (noopMetrics) OnPreempt(*Thread, int64)          {}
func (noopMetrics) OnAge(*Thread, Priority, Priority) {}
