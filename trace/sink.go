// Package trace carries the scheduler's stable, compatibility-sensitive
// trace events through an injected sink instead of a global stream, per
// the kernel that owns it.
package trace

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Sink receives the four stable scheduler trace events. The exact string
// forms are part of the external contract and must not change:
//
//	Tick <t>: Thread <id> is inserted into queue L<k>
//	Tick <t>: Thread <id> is removed from queue L<k>
//	Tick <t>: Thread <id> is now selected for execution
//	Tick <t>: Thread <id> is replaced, and it has executed <n> ticks
type Sink interface {
	Inserted(tick int64, threadID int, band int)
	Removed(tick int64, threadID int, band int)
	Selected(tick int64, threadID int)
	Replaced(tick int64, threadID int, ranTicks int64)
}

// Discard is a Sink that drops every event.
type Discard struct{}

func (Discard) Inserted(int64, int, int)   {}
func (Discard) Removed(int64, int, int)    {}
func (Discard) Selected(int64, int)        {}
func (Discard) Replaced(int64, int, int64) {}

// Writer writes the exact stable strings to the given io.Writer, one per
// line. It is the implementation used by tests that assert on trace output.
type Writer struct {
	W io.Writer
}

func (s Writer) Inserted(tick int64, threadID int, band int) {
	fmt.Fprintf(s.W, "Tick %d: Thread %d is inserted into queue L%d\n", tick, threadID, band)
}

func (s Writer) Removed(tick int64, threadID int, band int) {
	fmt.Fprintf(s.W, "Tick %d: Thread %d is removed from queue L%d\n", tick, threadID, band)
}

func (s Writer) Selected(tick int64, threadID int) {
	fmt.Fprintf(s.W, "Tick %d: Thread %d is now selected for execution\n", tick, threadID)
}

func (s Writer) Replaced(tick int64, threadID int, ranTicks int64) {
	fmt.Fprintf(s.W, "Tick %d: Thread %d is replaced, and it has executed %d ticks\n", tick, threadID, ranTicks)
}

// Logrus emits the same stable strings through a logrus.FieldLogger at Info
// level, with structured fields alongside, so the trace can be consumed both
// by exact-string assertions (via the Message field) and by structured log
// aggregation.
type Logrus struct {
	Log logrus.FieldLogger
}

func (s Logrus) logger() logrus.FieldLogger {
	if s.Log != nil {
		return s.Log
	}
	return logrus.StandardLogger()
}

func (s Logrus) Inserted(tick int64, threadID int, band int) {
	s.logger().WithFields(logrus.Fields{
		"tick": tick, "thread_id": threadID, "queue": fmt.Sprintf("L%d", band),
	}).Infof("Tick %d: Thread %d is inserted into queue L%d", tick, threadID, band)
}

func (s Logrus) Removed(tick int64, threadID int, band int) {
	s.logger().WithFields(logrus.Fields{
		"tick": tick, "thread_id": threadID, "queue": fmt.Sprintf("L%d", band),
	}).Infof("Tick %d: Thread %d is removed from queue L%d", tick, threadID, band)
}

func (s Logrus) Selected(tick int64, threadID int) {
	s.logger().WithFields(logrus.Fields{
		"tick": tick, "thread_id": threadID,
	}).Infof("Tick %d: Thread %d is now selected for execution", tick, threadID)
}

func (s Logrus) Replaced(tick int64, threadID int, ranTicks int64) {
	s.logger().WithFields(logrus.Fields{
		"tick": tick, "thread_id": threadID, "ticks_run": ranTicks,
	}).Infof("Tick %d: Thread %d is replaced, and it has executed %d ticks", tick, threadID, ranTicks)
}
