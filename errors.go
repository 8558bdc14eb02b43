package mlfqsched

import "fmt"

// ViolationCode identifies which contract was broken. Contract violations
// are never recovered from inside the scheduler: the caller is expected to
// let the panic propagate into its own kernel-panic path.
type ViolationCode int

const (
	ViolationInterruptsEnabled ViolationCode = iota
	ViolationBadThreadStatus
	ViolationDoubleDestroy
	ViolationStackOverflow
	ViolationNoCurrent
)

var violationNames = map[ViolationCode]string{
	ViolationInterruptsEnabled: "interrupts enabled on entry to scheduler operation",
	ViolationBadThreadStatus:   "thread admitted in an invalid status",
	ViolationDoubleDestroy:     "a thread is already pending destruction",
	ViolationStackOverflow:     "kernel stack overflow sentinel check failed",
	ViolationNoCurrent:         "no current thread to dispatch away from",
}

// ContractViolation reports a broken scheduler precondition or invariant.
// It is always fatal: the scheduler performs no recovery.
type ContractViolation struct {
	Code    ViolationCode
	Thread  int // offending thread ID, 0 if not applicable
	Context string
}

func (e *ContractViolation) Error() string {
	msg := violationNames[e.Code]
	if e.Thread != 0 {
		msg = fmt.Sprintf("%s (thread %d)", msg, e.Thread)
	}
	if e.Context != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Context)
	}
	return msg
}

func assertf(cond bool, code ViolationCode, threadID int, context string) {
	if !cond {
		panic(&ContractViolation{Code: code, Thread: threadID, Context: context})
	}
}
