package mlfqsched

import "container/heap"

// l1Heap orders by ascending PredictedBurst (shortest-burst-first), ties
// broken by admission sequence. It implements heap.Interface, scoped to a
// single band rather than the whole ready set.
type l1Heap []*Thread

func (h l1Heap) Len() int { return len(h) }

func (h l1Heap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.PredictedBurst != b.PredictedBurst {
		return a.PredictedBurst < b.PredictedBurst
	}
	return a.seq < b.seq
}

func (h l1Heap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *l1Heap) Push(x any) {
	t := x.(*Thread)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *l1Heap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

func (h l1Heap) peek() *Thread {
	if len(h) == 0 {
		return nil
	}
	return h[0]
}

// l2Heap orders by descending Priority (highest-priority-first), ties
// broken by admission sequence.
type l2Heap []*Thread

func (h l2Heap) Len() int { return len(h) }

func (h l2Heap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.seq < b.seq
}

func (h l2Heap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *l2Heap) Push(x any) {
	t := x.(*Thread)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *l2Heap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

func (h l2Heap) peek() *Thread {
	if len(h) == 0 {
		return nil
	}
	return h[0]
}

// l3Queue is a strict FIFO, matching the original std::list-backed L3Queue.
type l3Queue struct {
	items []*Thread
}

func (q *l3Queue) len() int { return len(q.items) }

func (q *l3Queue) pushBack(t *Thread) {
	t.index = len(q.items)
	q.items = append(q.items, t)
}

func (q *l3Queue) front() *Thread {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

func (q *l3Queue) popFront() *Thread {
	if len(q.items) == 0 {
		return nil
	}
	t := q.items[0]
	q.items = q.items[1:]
	t.index = -1
	for i, other := range q.items {
		other.index = i
	}
	return t
}

// readySet is the three disjoint ready bands. It owns every READY thread
// exactly once (invariant 1).
type readySet struct {
	l1 l1Heap
	l2 l2Heap
	l3 l3Queue
}

func newReadySet() *readySet {
	rs := &readySet{}
	heap.Init(&rs.l1)
	heap.Init(&rs.l2)
	return rs
}

func (rs *readySet) insert(t *Thread) {
	switch t.band {
	case BandL1:
		heap.Push(&rs.l1, t)
	case BandL2:
		heap.Push(&rs.l2, t)
	default:
		rs.l3.pushBack(t)
	}
}

// remove detaches t from whichever band currently holds it. Used when a
// thread's band changes mid-wait (aging) and it must migrate queues.
func (rs *readySet) remove(t *Thread) {
	switch t.band {
	case BandL1:
		heap.Remove(&rs.l1, t.index)
	case BandL2:
		heap.Remove(&rs.l2, t.index)
	case BandL3:
		for i, other := range rs.l3.items {
			if other == t {
				rs.l3.items = append(rs.l3.items[:i], rs.l3.items[i+1:]...)
				break
			}
		}
		for i, other := range rs.l3.items {
			other.index = i
		}
		t.index = -1
	}
}

// peekNext returns the head of the highest non-empty band without removing
// it, or nil if every band is empty.
func (rs *readySet) peekNext() *Thread {
	if t := rs.l1.peek(); t != nil {
		return t
	}
	if t := rs.l2.peek(); t != nil {
		return t
	}
	return rs.l3.front()
}

// findNext removes and returns the head of the highest non-empty band, or
// nil if every band is empty.
func (rs *readySet) findNext() *Thread {
	if rs.l1.Len() > 0 {
		return heap.Pop(&rs.l1).(*Thread)
	}
	if rs.l2.Len() > 0 {
		return heap.Pop(&rs.l2).(*Thread)
	}
	if rs.l3.len() > 0 {
		return rs.l3.popFront()
	}
	return nil
}

// fixL2 re-establishes heap order for t after its priority changed in
// place (aging within L2, where the band didn't cross a boundary).
func (rs *readySet) fixL2(t *Thread) {
	heap.Fix(&rs.l2, t.index)
}

func (rs *readySet) empty() bool {
	return rs.l1.Len() == 0 && rs.l2.Len() == 0 && rs.l3.len() == 0
}
