package sched

import "fmt"

// A Task is a piece of work that runs periodically on behalf of an owner.
type Task interface {
	// Run performs one round of the task's work.
	Run() error
}

// An Owner is the external identity that a registration belongs to. Owners
// are compared by identity, so implementations must be comparable; pointer
// implementations are typical. The scheduler never manages an owner's
// lifecycle. It only asks a LivenessChecker whether the owner still exists.
type Owner interface {
	Name() string
}

// A LivenessChecker tells whether an owner is still spawned in the host
// world. The scheduler queries it once per dispatch attempt.
type LivenessChecker interface {
	Spawned(o Owner) bool
}

// LivenessFunc adapts a plain function to the LivenessChecker interface.
type LivenessFunc func(o Owner) bool

// Spawned calls f.
func (f LivenessFunc) Spawned(o Owner) bool {
	return f(o)
}

// An Entry is one registration tracked by a Scheduler. It ties a task to the
// owner it runs on behalf of and the interval it runs at.
type Entry struct {
	task     Task
	interval Tick
	owner    Owner
}

// Task returns the task of the entry.
func (e *Entry) Task() Task {
	return e.task
}

// Interval returns the tick period of the entry. The interval is immutable
// for the entry's lifetime.
func (e *Entry) Interval() Tick {
	return e.interval
}

// Owner returns the owner of the entry.
func (e *Entry) Owner() Owner {
	return e.owner
}

// EntryInfo is a read-only snapshot of an entry, used for diagnostics.
type EntryInfo struct {
	Owner    string
	Interval Tick
	Task     string
}

func (e *Entry) info() EntryInfo {
	return EntryInfo{
		Owner:    e.owner.Name(),
		Interval: e.interval,
		Task:     fmt.Sprintf("%T", e.task),
	}
}
