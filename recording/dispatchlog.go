package recording

import (
	"fmt"

	"github.com/sarchlab/ticksched/sched"
)

// DispatchRecord is one row of the task_dispatch table.
type DispatchRecord struct {
	Tick   int64
	Owner  string
	Task   string
	Status string
	Error  string
}

const dispatchTable = "task_dispatch"

// DispatchLogger is a hook that records the outcome of every dispatch into
// the data recorder.
type DispatchLogger struct {
	ticks    sched.TickTeller
	recorder DataRecorder
}

// NewDispatchLogger creates a DispatchLogger and prepares its table. The tick
// teller is usually the scheduler being hooked.
func NewDispatchLogger(
	ticks sched.TickTeller,
	recorder DataRecorder,
) *DispatchLogger {
	l := &DispatchLogger{
		ticks:    ticks,
		recorder: recorder,
	}

	recorder.CreateTable(dispatchTable, DispatchRecord{})

	return l
}

// Func records one row per dispatch outcome.
func (l *DispatchLogger) Func(ctx sched.HookCtx) {
	e, ok := ctx.Item.(*sched.Entry)
	if !ok {
		return
	}

	rec := DispatchRecord{
		Tick:  int64(l.ticks.LastTick()),
		Owner: e.Owner().Name(),
		Task:  fmt.Sprintf("%T", e.Task()),
	}

	switch ctx.Pos {
	case sched.HookPosAfterTask:
		rec.Status = "ok"
	case sched.HookPosTaskFailed:
		rec.Status = "failed"
		rec.Error = fmt.Sprint(ctx.Detail)
	case sched.HookPosOwnerDropped:
		rec.Status = "dropped"
	default:
		return
	}

	l.recorder.InsertData(dispatchTable, rec)
}
