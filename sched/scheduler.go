package sched

import (
	"errors"
	"fmt"
	"log"
)

// Errors returned for structural misuse of the scheduler. Runtime failures of
// registered tasks never surface as errors; they are caught at the dispatch
// site and reported through the logger and the hooks.
var (
	// ErrUninitialized is returned when the scheduler is used before Init.
	ErrUninitialized = errors.New("scheduler is not initialized")

	// ErrInvalidOwner is returned when registering a nil or unspawned owner.
	ErrInvalidOwner = errors.New("owner is nil or not spawned")

	// ErrNilTask is returned when registering a nil task.
	ErrNilTask = errors.New("task must not be nil")

	// ErrInvalidInterval is returned when registering with an interval
	// smaller than one tick.
	ErrInvalidInterval = errors.New("interval must be at least 1 tick")

	// ErrNotRegistered is returned when unregistering an owner that has no
	// registration.
	ErrNotRegistered = errors.New("owner is not registered")
)

// A TickTeller can be used to get the most recently processed tick.
type TickTeller interface {
	LastTick() Tick
}

// A Scheduler runs many periodic tasks, each once every N ticks, and spreads
// the tasks that share one interval evenly across the N ticks of that
// interval instead of running all of them on the same tick.
//
// A Scheduler is owned by a single goroutine. The host calls Step once per
// discrete tick; tasks run synchronously inside Step. Tasks may register and
// unregister entries while a step is in progress, but they must not block.
type Scheduler struct {
	HookableBase

	liveness LivenessChecker
	logger   *log.Logger

	registry         map[Owner]*Entry
	buckets          []*periodBucket
	bucketByInterval map[Tick]*periodBucket
	pendingRemovals  []Owner
	lastTick         Tick
}

// NewScheduler creates a Scheduler. The liveness checker decides whether an
// owner is still spawned at dispatch time. Duplicate-registration warnings
// and task failures are written to the logger.
func NewScheduler(liveness LivenessChecker, logger *log.Logger) *Scheduler {
	if liveness == nil {
		log.Panic("liveness checker must not be nil")
	}

	if logger == nil {
		logger = log.Default()
	}

	s := new(Scheduler)
	s.liveness = liveness
	s.logger = logger
	s.lastTick = tickNever

	return s
}

// Init makes the scheduler usable starting from the given tick. Calling Init
// again discards every existing registration; hosts are responsible for
// re-registering after a reload.
func (s *Scheduler) Init(now Tick) {
	s.registry = make(map[Owner]*Entry)
	s.buckets = nil
	s.bucketByInterval = make(map[Tick]*periodBucket)
	s.pendingRemovals = nil
	s.lastTick = now
}

func (s *Scheduler) initialized() bool {
	return s.registry != nil
}

// LastTick returns the most recently processed tick, or -1 before Init.
func (s *Scheduler) LastTick() Tick {
	return s.lastTick
}

// Register adds a task that runs once every interval ticks on behalf of the
// owner. The entry becomes live starting from the next Step. Registering an
// owner that already has an entry keeps the original entry and only logs a
// warning.
func (s *Scheduler) Register(task Task, interval Tick, owner Owner) error {
	if !s.initialized() {
		return ErrUninitialized
	}

	if owner == nil {
		return ErrInvalidOwner
	}

	if !s.liveness.Spawned(owner) {
		return fmt.Errorf("owner %s: %w", owner.Name(), ErrInvalidOwner)
	}

	if task == nil {
		return fmt.Errorf("owner %s: %w", owner.Name(), ErrNilTask)
	}

	if interval < 1 {
		return fmt.Errorf("interval %d: %w", interval, ErrInvalidInterval)
	}

	if _, registered := s.registry[owner]; registered {
		s.logger.Printf(
			"warn: owner %s is already registered, keeping the original entry",
			owner.Name())
		return nil
	}

	e := &Entry{task: task, interval: interval, owner: owner}
	s.registry[owner] = e
	s.bucketFor(interval).add(e)

	return nil
}

// bucketFor returns the bucket for the given interval, creating it on first
// use. Buckets are never removed, even when they become empty, so that
// re-registration with a common interval does not reallocate.
func (s *Scheduler) bucketFor(interval Tick) *periodBucket {
	b, exists := s.bucketByInterval[interval]
	if exists {
		return b
	}

	b = newPeriodBucket(interval)
	s.bucketByInterval[interval] = b
	s.buckets = append(s.buckets, b)

	return b
}

// Unregister removes the owner's entry immediately. Unregistering from
// within a running task is legal, but entries not yet visited in the current
// cycle may shift by at most one cycle as a result.
func (s *Scheduler) Unregister(owner Owner) error {
	e, registered := s.registry[owner]
	if !registered {
		return ErrNotRegistered
	}

	s.removeEntry(e)

	return nil
}

func (s *Scheduler) removeEntry(e *Entry) {
	delete(s.registry, e.owner)
	s.bucketByInterval[e.interval].remove(e)
}

// IsRegistered reports whether the owner currently has an entry.
func (s *Scheduler) IsRegistered(owner Owner) bool {
	_, registered := s.registry[owner]
	return registered
}

// Step processes one discrete tick. Each bucket dispatches its fair share of
// tasks for this tick, in bucket-creation order. Owners found unspawned
// during dispatch are removed after all buckets have stepped, so that the
// entry lists stay stable while they are iterated.
func (s *Scheduler) Step(now Tick) error {
	if !s.initialized() {
		return ErrUninitialized
	}

	s.lastTick = now

	for _, b := range s.buckets {
		b.step(now, s)
	}

	s.drainPendingRemovals()

	return nil
}

func (s *Scheduler) drainPendingRemovals() {
	for _, owner := range s.pendingRemovals {
		e, registered := s.registry[owner]
		if !registered {
			continue
		}

		s.removeEntry(e)
	}

	s.pendingRemovals = s.pendingRemovals[:0]
}

// dispatch runs a single entry. Unspawned owners are queued for removal at
// the end of the step without their task running. A task failure is reported
// and contained; it never interrupts the step loop.
func (s *Scheduler) dispatch(now Tick, e *Entry) {
	if !s.liveness.Spawned(e.owner) {
		s.pendingRemovals = append(s.pendingRemovals, e.owner)
		s.InvokeHook(HookCtx{Domain: s, Pos: HookPosOwnerDropped, Item: e})
		return
	}

	s.InvokeHook(HookCtx{Domain: s, Pos: HookPosBeforeTask, Item: e})

	err := runTask(e.task)
	if err != nil {
		s.logger.Printf("task %T of owner %s failed at tick %d: %v",
			e.task, e.owner.Name(), now, err)
		s.InvokeHook(HookCtx{
			Domain: s,
			Pos:    HookPosTaskFailed,
			Item:   e,
			Detail: err,
		})
		return
	}

	s.InvokeHook(HookCtx{Domain: s, Pos: HookPosAfterTask, Item: e})
}

// runTask runs one task inside a fault boundary. A panic inside the task is
// converted to an error so that one misbehaving task cannot halt the step
// loop.
func runTask(t Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	return t.Run()
}

// Entries returns a snapshot of all current registrations, in bucket order.
// It is meant for diagnostics and tests and has no side effects.
func (s *Scheduler) Entries() []EntryInfo {
	infos := make([]EntryInfo, 0, len(s.registry))
	for _, b := range s.buckets {
		for _, e := range b.entries {
			infos = append(infos, e.info())
		}
	}

	return infos
}
