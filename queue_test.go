package mlfqsched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadySet_L1OrdersByBurstThenAdmission(t *testing.T) {
	rs := newReadySet()

	a := NewThread(1, 120, 50)
	b := NewThread(2, 130, 10)
	c := NewThread(3, 110, 30)
	d := NewThread(4, 140, 10) // same burst as b, admitted later

	for i, th := range []*Thread{a, b, c, d} {
		th.band = th.Priority.Band()
		th.seq = int64(i)
		rs.insert(th)
	}

	var order []int
	for rs.l1.Len() > 0 {
		order = append(order, rs.findNext().ID)
	}

	assert.Equal(t, []int{2, 4, 3, 1}, order)
}

func TestReadySet_L2OrdersByDescendingPriority(t *testing.T) {
	rs := newReadySet()

	a := NewThread(1, 60, 0)
	b := NewThread(2, 80, 0)
	c := NewThread(3, 70, 0)

	for i, th := range []*Thread{a, b, c} {
		th.band = th.Priority.Band()
		th.seq = int64(i)
		rs.insert(th)
	}

	var order []int
	for rs.l2.Len() > 0 {
		order = append(order, rs.findNext().ID)
	}

	assert.Equal(t, []int{2, 3, 1}, order)
}

func TestReadySet_L3IsStrictFIFO(t *testing.T) {
	rs := newReadySet()

	a := NewThread(1, 30, 0)
	b := NewThread(2, 40, 0)
	c := NewThread(3, 20, 0)

	for i, th := range []*Thread{a, b, c} {
		th.band = th.Priority.Band()
		th.seq = int64(i)
		rs.insert(th)
	}

	assert.Equal(t, 1, rs.findNext().ID)
	assert.Equal(t, 2, rs.findNext().ID)
	assert.Equal(t, 3, rs.findNext().ID)
	assert.Nil(t, rs.findNext())
}

func TestReadySet_PeekDoesNotRemove(t *testing.T) {
	rs := newReadySet()

	a := NewThread(1, 30, 0)
	a.band = a.Priority.Band()
	rs.insert(a)

	assert.Equal(t, a, rs.peekNext())
	assert.Equal(t, a, rs.peekNext())
	assert.False(t, rs.empty())
	assert.Equal(t, a, rs.findNext())
	assert.True(t, rs.empty())
}

func TestReadySet_BandDominance(t *testing.T) {
	rs := newReadySet()

	l3 := NewThread(1, 10, 0)
	l2 := NewThread(2, 60, 0)
	l1 := NewThread(3, 120, 5)

	for i, th := range []*Thread{l3, l2, l1} {
		th.band = th.Priority.Band()
		th.seq = int64(i)
		rs.insert(th)
	}

	assert.Equal(t, l1, rs.peekNext())
}

func TestReadySet_RemoveMigratesBand(t *testing.T) {
	rs := newReadySet()

	a := NewThread(1, 40, 0)
	a.band = a.Priority.Band()
	rs.insert(a)

	rs.remove(a)
	a.Priority = ClampPriority(60)
	a.band = a.Priority.Band()
	rs.insert(a)

	assert.Equal(t, 0, rs.l3.len())
	assert.Equal(t, 1, rs.l2.Len())
}
