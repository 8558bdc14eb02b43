// Package mlfqsched implements a multi-level feedback queue scheduler for a
// uniprocessor instructional kernel.
//
// Threads are held in one of three disjoint ready bands: L1 (priority >= 100,
// ordered by shortest predicted CPU burst), L2 (50 <= priority < 100, ordered
// by highest priority), and L3 (priority < 50, strict FIFO with round-robin
// quantum preemption). Placement happens on admission, selection happens at
// every dispatch point, and a periodic tick drives both quantum-expiry
// preemption on L3 and priority aging across all three bands so that no
// runnable thread starves indefinitely.
//
// Every exported operation assumes it is called with interrupts (or their
// simulated equivalent) disabled; the scheduler holds no internal lock of its
// own and relies on that precondition for mutual exclusion, matching the
// single-CPU, interrupt-driven kernel it is meant to sit inside.
package mlfqsched
