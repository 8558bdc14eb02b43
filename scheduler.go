package mlfqsched

import (
	"github.com/ironmancool/mlfqsched/trace"
)

// Scheduler is the multi-level feedback queue ready-set, placement,
// selection, preemption and aging policy for a single CPU.
//
// Every exported method must be called with interrupts disabled (or their
// simulated equivalent via Options.InterruptLevel); the scheduler holds no
// lock of its own and recursive entry is undefined.
type Scheduler struct {
	ready *readySet

	current           *Thread
	toBeDestroyed     *Thread
	enablePreemptOnce bool

	quantum        int64
	agingThreshold int64
	agingIncrement int

	interruptsOff func() bool
	alarm         Alarm
	trace         trace.Sink
	metrics       MetricsHook

	seq int64
}

// New creates a Scheduler with the given options. Equivalent to the
// original Scheduler constructor: no thread is current and the ready set is
// empty until the caller admits an initial thread.
func New(opts ...Option) *Scheduler {
	o := &Options{
		Quantum:        DefaultQuantum,
		AgingThreshold: DefaultAgingThreshold,
		AgingIncrement: DefaultAgingIncrement,
	}
	for _, opt := range opts {
		opt(o)
	}

	s := &Scheduler{
		ready:          newReadySet(),
		quantum:        o.Quantum,
		agingThreshold: o.AgingThreshold,
		agingIncrement: o.AgingIncrement,
		interruptsOff:  o.InterruptLevel,
		alarm:          o.Alarm,
		trace:          o.Trace,
		metrics:        o.Metrics,
	}
	if s.alarm == nil {
		s.alarm = NoopAlarm{}
	}
	if s.trace == nil {
		s.trace = trace.Discard{}
	}
	if s.metrics == nil {
		s.metrics = noopMetrics{}
	}
	return s
}

func (s *Scheduler) assertInterruptsOff(threadID int, context string) {
	if s.interruptsOff == nil {
		return
	}
	assertf(s.interruptsOff(), ViolationInterruptsEnabled, threadID, context)
}

// Current returns the currently RUNNING thread, or nil if the CPU is idle.
func (s *Scheduler) Current() *Thread { return s.current }

// PreemptPending reports whether a higher-band admission has left a
// preemption check outstanding.
func (s *Scheduler) PreemptPending() bool { return s.enablePreemptOnce }

// ReadyToRun admits thread into the ready set.
//
// now is the current tick. yielding, if non-nil, is the thread being
// re-admitted as part of a voluntary yield, preemption or block of the
// previously running thread; its predicted burst is refreshed from its
// accumulated burst before placement; the update happens whenever *any*
// thread is admitted while yielding is current, not only when thread ==
// yielding.
func (s *Scheduler) ReadyToRun(thread *Thread, now int64, yielding *Thread) {
	s.assertInterruptsOff(thread.ID, "ReadyToRun")
	assertf((thread.Status != StatusRunning || thread == s.current) && thread.Status != StatusTerminated,
		ViolationBadThreadStatus, thread.ID, "ReadyToRun requires a non-terminated thread that is not running elsewhere")

	thread.Status = StatusReady
	thread.WaitStartTick = now

	if yielding != nil && yielding != s.current {
		panic(&ContractViolation{Code: ViolationBadThreadStatus, Thread: yielding.ID,
			Context: "yielding thread must be the scheduler's current thread"})
	}
	if yielding != nil {
		yielding.PredictedBurst = clampBurst(0.5*float64(yielding.AccumBurst) + 0.5*yielding.PredictedBurst)
	}

	thread.band = thread.Priority.Band()
	thread.seq = s.seq
	s.seq++

	s.ready.insert(thread)
	s.trace.Inserted(now, thread.ID, bandNumber(thread.band))
	s.metrics.OnAdmit(thread, thread.band)

	if thread != s.current && (thread.band == BandL1 || thread.band == BandL2) {
		s.enablePreemptOnce = true
	}
}

func bandNumber(b Band) int {
	switch b {
	case BandL1:
		return 1
	case BandL2:
		return 2
	default:
		return 3
	}
}

// FindNextToRun removes and returns the head of the highest non-empty band,
// or nil if the ready set is empty. As a side effect it arms the
// round-robin alarm when the selection comes from L3, and disarms it
// otherwise, since L1/L2 preemption is event-driven, not quantum-driven.
func (s *Scheduler) FindNextToRun(now int64) *Thread {
	s.assertInterruptsOff(0, "FindNextToRun")

	t := s.ready.findNext()
	if t == nil {
		return nil
	}

	if t.band == BandL3 {
		s.alarm.SetEnabled(true)
	} else {
		s.alarm.SetEnabled(false)
	}

	s.trace.Removed(now, t.ID, bandNumber(t.band))
	return t
}

// PeekNext returns the head of the highest non-empty band without removing
// it, or nil if the ready set is empty. Used by the preemption policy.
func (s *Scheduler) PeekNext() *Thread {
	s.assertInterruptsOff(0, "PeekNext")
	return s.ready.peekNext()
}

// ShouldPreempt evaluates whether the thread that just became ready at the
// head of the ready set should preempt current. It clears the
// pending-preemption flag as a side effect of being asked; callers that
// decide to preempt go on to call Run, which clears it again defensively.
func (s *Scheduler) ShouldPreempt() bool {
	s.assertInterruptsOff(0, "ShouldPreempt")
	s.enablePreemptOnce = false

	if s.current == nil {
		return false
	}
	next := s.ready.peekNext()
	if next == nil {
		return false
	}

	switch s.current.band {
	case BandL3:
		return next.band == BandL1 || next.band == BandL2
	case BandL2:
		return next.band == BandL1
	case BandL1:
		return next.band == BandL1 && next.PredictedBurst < s.current.PredictedBurst
	default:
		return false
	}
}
