package sched

// HookPos defines the enum of possible hooking positions
type HookPos struct {
	Name string
}

// HookCtx is the context that holds all the information about the site that a
// hook is triggered
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable defines an object that accept Hooks
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)
}

// HookPosBeforeTask is a hook position that triggers right before a task runs
var HookPosBeforeTask = &HookPos{Name: "BeforeTask"}

// HookPosAfterTask is a hook position that triggers after a task returns
// without an error
var HookPosAfterTask = &HookPos{Name: "AfterTask"}

// HookPosTaskFailed is a hook position that triggers when a task returns an
// error or panics. The Detail field of the context carries the error.
var HookPosTaskFailed = &HookPos{Name: "TaskFailed"}

// HookPosOwnerDropped is a hook position that triggers when an owner fails
// the liveness check at dispatch time and is queued for removal.
var HookPosOwnerDropped = &HookPos{Name: "OwnerDropped"}

// Hook is a short piece of program that can be invoked by a hookable object.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides some utility function for other type that implement
// the Hookable interface.
type HookableBase struct {
	Hooks []Hook
}

// NewHookableBase creates a HookableBase object
func NewHookableBase() *HookableBase {
	h := new(HookableBase)
	h.Hooks = make([]Hook, 0)
	return h
}

// AcceptHook register a hook
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// InvokeHook triggers the register Hooks
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
