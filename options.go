package mlfqsched

import "github.com/ironmancool/mlfqsched/trace"

const (
	// DefaultQuantum is the L3 round-robin time slice, in ticks.
	DefaultQuantum int64 = 100

	// DefaultAgingThreshold is how long (in ticks) a thread may wait
	// before its priority is aged up.
	DefaultAgingThreshold int64 = 1500

	// DefaultAgingIncrement is how many priority points an aging event
	// grants, saturating at MaxPriority.
	DefaultAgingIncrement = 10
)

// Options holds configuration for the Scheduler.
type Options struct {
	Quantum        int64
	AgingThreshold int64
	AgingIncrement int

	InterruptLevel func() bool // true == interrupts off, matches interrupt_level()
	Alarm          Alarm
	Trace          trace.Sink
	Metrics        MetricsHook
}

// Option configures Options.
type Option func(*Options)

// WithQuantum overrides the L3 round-robin quantum (default 100 ticks).
func WithQuantum(ticks int64) Option {
	return func(o *Options) { o.Quantum = ticks }
}

// WithAgingThreshold overrides how long a thread may wait before aging
// (default 1500 ticks).
func WithAgingThreshold(ticks int64) Option {
	return func(o *Options) { o.AgingThreshold = ticks }
}

// WithAgingIncrement overrides the per-event priority boost (default 10).
func WithAgingIncrement(points int) Option {
	return func(o *Options) { o.AgingIncrement = points }
}

// WithInterruptLevel installs the interrupt_level() collaborator used only
// in assertions. It must return true when interrupts are
// disabled. If not supplied, the scheduler assumes interrupts are always
// disabled, suitable for single-threaded simulation and tests.
func WithInterruptLevel(f func() bool) Option {
	return func(o *Options) { o.InterruptLevel = f }
}

// WithAlarm installs the round-robin quantum timer collaborator.
func WithAlarm(a Alarm) Option {
	return func(o *Options) { o.Alarm = a }
}

// WithTrace installs the sink that receives the four stable trace events.
func WithTrace(s trace.Sink) Option {
	return func(o *Options) { o.Trace = s }
}

// WithMetricsHook installs a MetricsHook for monitoring scheduler events.
func WithMetricsHook(h MetricsHook) Option {
	return func(o *Options) { o.Metrics = h }
}
