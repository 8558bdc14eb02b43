package mlfqsched

import (
	"fmt"
	"io"
)

// Print dumps the ready set to w in band order L1, L2, L3, one thread per
// line, as (id, priority, predicted_burst, accum_burst) tuples. It is a
// debugging aid, not part of the stable trace contract.
func (s *Scheduler) Print(w io.Writer) {
	fmt.Fprintln(w, "Ready list contents:")
	for _, t := range s.ready.l1 {
		fmt.Fprintf(w, "  L1 (%d, %d, %.2f, %d)\n", t.ID, t.Priority, t.PredictedBurst, t.AccumBurst)
	}
	for _, t := range s.ready.l2 {
		fmt.Fprintf(w, "  L2 (%d, %d, %.2f, %d)\n", t.ID, t.Priority, t.PredictedBurst, t.AccumBurst)
	}
	for _, t := range s.ready.l3.items {
		fmt.Fprintf(w, "  L3 (%d, %d, %.2f, %d)\n", t.ID, t.Priority, t.PredictedBurst, t.AccumBurst)
	}
}
