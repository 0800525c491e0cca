package sched

// Tick is one discrete unit of the host's simulation time. The scheduler has
// no notion of wall-clock time; hosts supply a monotonically increasing,
// non-negative tick count.
type Tick int64

// tickNever marks a tick value that has not been set yet.
const tickNever Tick = -1
