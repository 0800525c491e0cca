package sched

import "log"

// A LogHook is a hook that is responsible for recording scheduler activity.
type LogHook interface {
	Hook
}

// LogHookBase provides the common logic for all LogHooks
type LogHookBase struct {
	*log.Logger
}

// TaskLogger is a hook that prints every dispatch attempt.
type TaskLogger struct {
	LogHookBase
}

// NewTaskLogger returns a new TaskLogger which will write into the logger
func NewTaskLogger(logger *log.Logger) *TaskLogger {
	h := new(TaskLogger)
	h.Logger = logger
	return h
}

// Func writes the dispatch information into the logger
func (h *TaskLogger) Func(ctx HookCtx) {
	e, ok := ctx.Item.(*Entry)
	if !ok {
		return
	}

	switch ctx.Pos {
	case HookPosBeforeTask:
		h.Printf("run %T -> %s", e.Task(), e.Owner().Name())
	case HookPosTaskFailed:
		h.Printf("fail %T -> %s: %v", e.Task(), e.Owner().Name(), ctx.Detail)
	case HookPosOwnerDropped:
		h.Printf("drop %s", e.Owner().Name())
	}
}
