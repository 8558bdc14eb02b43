package mlfqsched

// InterruptGate is a minimal stand-in for a kernel's interrupt_level()
// collaborator, for tests and the simulation driver that have
// no real interrupt controller to query. Off reports the gate's current
// state; SetOff flips it. Pass Off as Options.InterruptLevel.
type InterruptGate struct {
	off bool
}

// NewInterruptGate returns a gate that starts with interrupts disabled,
// the precondition every scheduler operation assumes.
func NewInterruptGate() *InterruptGate {
	return &InterruptGate{off: true}
}

func (g *InterruptGate) Off() bool { return g.off }

func (g *InterruptGate) SetOff(off bool) { g.off = off }
