package mlfqsched

import (
	"sort"

	"github.com/ironmancool/mlfqsched/trace"
)

// Report summarizes a completed simulation run, for the CLI driver.
type Report struct {
	TicksElapsed int64
	Completed    []CompletionRecord
}

// CompletionRecord records when a simulated thread finished.
type CompletionRecord struct {
	ThreadID     int
	CompletedAt  int64
	TicksRunning int64
}

// Simulate drives a Scheduler against a Workload: threads arrive at their
// configured tick, are admitted, and each runs until it has consumed
// ServiceTicks ticks in total, possibly across several bursts, being
// preempted exactly as the policies in this package describe. It exists so the core scheduler is exercisable without
// a real kernel; it is not itself part of the scheduler's contract.
func Simulate(w *Workload, sink trace.Sink, metrics MetricsHook) *Report {
	opts := append(w.Options(), WithTrace(sink), WithMetricsHook(metrics), WithAlarm(NoopAlarm{}))
	s := New(opts...)

	arrivals := append([]Admission(nil), w.Admissions...)
	sort.Slice(arrivals, func(i, j int) bool { return arrivals[i].ArrivalTick < arrivals[j].ArrivalTick })

	remaining := make(map[int]int64, len(arrivals))
	var report Report

	nextArrival := 0
	var tick int64

	for nextArrival < len(arrivals) || s.Current() != nil || !s.ready.empty() {
		for nextArrival < len(arrivals) && arrivals[nextArrival].ArrivalTick == tick {
			a := arrivals[nextArrival]
			nextArrival++

			th := NewThread(a.ID, int(a.Priority), a.PredictedBurst)
			remaining[a.ID] = a.ServiceTicks
			s.ReadyToRun(th, tick, nil)
		}

		if expired := s.Tick(tick); expired {
			s.preemptCurrent(tick)
		} else if s.current != nil && s.ShouldPreempt() {
			s.preemptCurrent(tick)
		}

		if s.current == nil {
			if next := s.FindNextToRun(tick); next != nil {
				s.Run(next, false, tick, nil)
			}
		}

		if cur := s.current; cur != nil {
			cur.AccumBurst++
			remaining[cur.ID]--

			if remaining[cur.ID] <= 0 {
				cur.Status = StatusTerminated
				next := s.FindNextToRun(tick + 1)
				if next != nil {
					s.Run(next, true, tick+1, nil)
				} else {
					// Last thread in the system: nothing to switch onto.
					// Reclaim directly, mirroring what Run would do once a
					// successor exists.
					s.current = nil
					s.CheckToBeDestroyed()
				}
				report.Completed = append(report.Completed, CompletionRecord{
					ThreadID: cur.ID, CompletedAt: tick + 1,
				})
			}
		}

		tick++
	}

	report.TicksElapsed = tick
	return &report
}

// preemptCurrent re-admits the running thread and dispatches whatever the
// selection policy picks next, the sequence a voluntary yield, an L3
// quantum expiry, or a higher-band arrival all funnel through.
func (s *Scheduler) preemptCurrent(now int64) {
	cur := s.current
	if cur == nil {
		return
	}
	cur.Status = StatusReady
	s.ReadyToRun(cur, now, cur)

	next := s.FindNextToRun(now)
	if next != nil {
		s.Run(next, false, now, nil)
	}
}
