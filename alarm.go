package mlfqsched

// Alarm is the quantum-timer collaborator consumed by FindNextToRun.
// SetEnabled(true) requests the round-robin quantum timer be armed (the
// scheduler is running an L3 thread); SetEnabled(false) requests it be
// disarmed (L1/L2 preemption is event-driven, not quantum-driven).
type Alarm interface {
	SetEnabled(enabled bool)
}

// NoopAlarm discards enable/disable requests. Useful when the embedding
// kernel drives its own timer independently of the scheduler's hints.
type NoopAlarm struct{}

func (NoopAlarm) SetEnabled(bool) {}

// CallbackAlarm adapts a plain func(bool) to the Alarm interface, for tests
// and the simulation driver that want to observe enable/disable transitions.
type CallbackAlarm func(enabled bool)

func (f CallbackAlarm) SetEnabled(enabled bool) { f(enabled) }
