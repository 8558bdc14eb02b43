package mlfqsched

// Run performs the dispatch handoff. next is the thread
// about to become RUNNING (returned by FindNextToRun or chosen directly by
// the caller); the caller must already have set the outgoing current
// thread's status to READY, BLOCKED or TERMINATED before calling Run.
//
// switchFunc is the machine-level stack/register swap (machine_switch); it
// is invoked with (old, next) and is expected to return
// control here only when some future dispatch re-selects old. In a real
// kernel this never returns synchronously; in the simulation driver and
// tests it is a plain function call, since there is no real stack to swap.
func (s *Scheduler) Run(next *Thread, finishing bool, now int64, switchFunc func(old, next *Thread)) {
	s.assertInterruptsOff(next.ID, "Run")

	old := s.current
	assertf(old != nil || !finishing, ViolationNoCurrent, next.ID, "finishing dispatch with no current thread")

	if finishing {
		assertf(s.toBeDestroyed == nil, ViolationDoubleDestroy, old.ID, "Run")
		s.toBeDestroyed = old
	}

	if old != nil {
		if old.Space != nil {
			if old.UserContext != nil {
				old.UserContext.SaveUserState()
			}
			old.Space.Save()
		}
		if old.CheckOverflow != nil {
			assertf(old.CheckOverflow(), ViolationStackOverflow, old.ID, "Run")
		}
	}

	s.current = next
	next.Status = StatusRunning
	next.LastDispatchTick = now
	s.enablePreemptOnce = false

	s.trace.Selected(now, next.ID)
	s.metrics.OnDispatch(next, now)

	if old != nil {
		ranTicks := old.AccumBurst
		s.trace.Replaced(now, old.ID, ranTicks)
		s.metrics.OnPreempt(old, ranTicks)

		// old.LastDispatchTick is also overwritten here, to the tick it
		// stopped running rather than the tick it started: Tick's L3
		// quantum check only ever reads LastDispatchTick on the thread
		// that is current, so this stale write on the outgoing thread is
		// inert, but it mirrors the original scheduler's lastExecTick
		// assignment, made at the moment a thread stops running.
		old.LastDispatchTick = now
		old.AccumBurst = 0
	}

	if switchFunc != nil {
		switchFunc(old, next)
	}

	// Control resumes here once some future dispatch re-selects old (in a
	// real kernel, after SWITCH returns). The simulation driver and tests
	// call Run synchronously, so reclamation happens immediately below,
	// matching the uniprocessor contract that it runs on the next thread
	// to actually execute, not on the thread being destroyed.
	s.CheckToBeDestroyed()

	if old != nil && old.Space != nil {
		if old.UserContext != nil {
			old.UserContext.RestoreUserState()
		}
		old.Space.Restore()
	}
}

// CheckToBeDestroyed reclaims the pending thread, if any. Idempotent:
// calling it with nothing pending is a no-op.
func (s *Scheduler) CheckToBeDestroyed() {
	s.assertInterruptsOff(0, "CheckToBeDestroyed")
	if s.toBeDestroyed == nil {
		return
	}
	s.toBeDestroyed.Status = StatusTerminated
	s.toBeDestroyed = nil
}
