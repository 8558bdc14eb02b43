package mlfqsched_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironmancool/mlfqsched"
)

// requireInterruptsEnabledViolation runs fn and asserts it panics with a
// *mlfqsched.ContractViolation carrying ViolationInterruptsEnabled, the
// scheduler's sole mutual-exclusion precondition.
func requireInterruptsEnabledViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		cv, ok := r.(*mlfqsched.ContractViolation)
		require.True(t, ok, "expected *mlfqsched.ContractViolation, got %T", r)
		assert.Equal(t, mlfqsched.ViolationInterruptsEnabled, cv.Code)
	}()
	fn()
}

func TestScheduler_RejectsEveryOperationWhenInterruptsAreEnabled(t *testing.T) {
	t.Parallel()

	gate := mlfqsched.NewInterruptGate()
	gate.SetOff(false) // interrupts enabled: every scheduler operation must refuse to run

	s := mlfqsched.New(mlfqsched.WithInterruptLevel(gate.Off))
	thread := mlfqsched.NewThread(1, 10, 0)

	requireInterruptsEnabledViolation(t, func() {
		s.ReadyToRun(thread, 0, nil)
	})
	requireInterruptsEnabledViolation(t, func() {
		s.FindNextToRun(0)
	})
	requireInterruptsEnabledViolation(t, func() {
		s.Run(thread, false, 0, nil)
	})
	requireInterruptsEnabledViolation(t, func() {
		s.Tick(0)
	})
}

func TestScheduler_PermitsOperationsOnceInterruptsAreDisabledAgain(t *testing.T) {
	t.Parallel()

	gate := mlfqsched.NewInterruptGate()
	gate.SetOff(false)

	s := mlfqsched.New(mlfqsched.WithInterruptLevel(gate.Off))
	thread := mlfqsched.NewThread(1, 10, 0)

	requireInterruptsEnabledViolation(t, func() {
		s.ReadyToRun(thread, 0, nil)
	})

	gate.SetOff(true)
	assert.NotPanics(t, func() {
		s.ReadyToRun(thread, 0, nil)
	})
	assert.Equal(t, thread, s.FindNextToRun(0))
}
