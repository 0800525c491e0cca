package sched

// A periodBucket holds all the entries that share one tick interval and
// spreads their dispatches across the ticks of that interval.
type periodBucket struct {
	interval Tick
	entries  []*Entry

	cursor        int
	cycleDeadline Tick
}

// newPeriodBucket creates a bucket for one interval value. The cycle deadline
// starts at 0 so that the first step always begins a fresh cycle.
func newPeriodBucket(interval Tick) *periodBucket {
	return &periodBucket{interval: interval}
}

func (b *periodBucket) add(e *Entry) {
	b.entries = append(b.entries, e)
}

// remove drops the entry by identity. The registry guarantees at most one
// entry per owner, so a single match is sufficient.
func (b *periodBucket) remove(e *Entry) {
	for i, candidate := range b.entries {
		if candidate == e {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// step dispatches this bucket's fair share of entries for one tick. Over
// interval consecutive ticks with stable membership, every entry is
// dispatched exactly once.
func (b *periodBucket) step(now Tick, s *Scheduler) {
	if now >= b.cycleDeadline {
		b.cursor = 0
		b.cycleDeadline = now + b.interval
	}

	// ceil(N/T) calls per tick spreads the dispatches evenly instead of
	// bursting all N of them on the first tick of the cycle.
	callsThisStep := (Tick(len(b.entries)) + b.interval - 1) / b.interval

	for i := Tick(0); i < callsThisStep; i++ {
		if b.cursor >= len(b.entries) {
			break
		}

		s.dispatch(now, b.entries[b.cursor])
		b.cursor++
	}
}
