package mlfqsched

// Tick drives the two time-based policies from a single periodic entry
// point: aging of every waiting thread, and detection of L3 quantum expiry
// for the currently running thread.
//
// Tick never itself re-admits or dispatches current: a timer interrupt
// forcing current to be re-admitted and redispatched is the embedding
// kernel's job (it owns the interrupt-return path and the machine switch).
// Tick reports that the quantum has expired; the caller is expected to
// respond by calling ReadyToRun(current, now, current) followed by
// FindNextToRun and Run, the same sequence a voluntary yield would take.
func (s *Scheduler) Tick(now int64) (quantumExpired bool) {
	s.assertInterruptsOff(0, "Tick")

	s.age(now)

	if s.current != nil && s.current.band == BandL3 {
		if now-s.current.LastDispatchTick >= s.quantum {
			quantumExpired = true
		}
	}
	return quantumExpired
}

// age applies the priority-aging rule to every thread waiting in the ready
// set. current and blocked threads are never visited, since they are not
// resident in any ready queue.
func (s *Scheduler) age(now int64) {
	for _, t := range s.waitingThreads() {
		if now-t.WaitStartTick < s.agingThreshold {
			continue
		}

		from := t.Priority
		to := ClampPriority(int(t.Priority) + s.agingIncrement)
		newBand := to.Band()

		if newBand != t.band {
			s.ready.remove(t)
			t.Priority = to
			t.band = newBand
			t.WaitStartTick = now
			s.ready.insert(t)

			if newBand == BandL1 || newBand == BandL2 {
				s.enablePreemptOnce = true
			}
		} else {
			t.Priority = to
			t.WaitStartTick = now
			// Re-establish heap ordering: priority changed within L2's key,
			// or burst-ordering key is untouched within L1/L3 so no
			// reordering is needed there.
			if newBand == BandL2 {
				s.ready.fixL2(t)
			}
		}

		if to != from {
			s.metrics.OnAge(t, from, to)
		}
	}
}

// waitingThreads snapshots every thread currently resident in the ready
// set. Taken as a snapshot (rather than iterated in place) because aging a
// thread can move it between bands, which would otherwise invalidate
// in-progress iteration over the same slice.
func (s *Scheduler) waitingThreads() []*Thread {
	all := make([]*Thread, 0, s.ready.l1.Len()+s.ready.l2.Len()+s.ready.l3.len())
	all = append(all, s.ready.l1...)
	all = append(all, s.ready.l2...)
	all = append(all, s.ready.l3.items...)
	return all
}
