package input

import (
	"context"

	"github.com/bnema/workbench/internal/logging"
)

// KeyListener receives every key event dispatched on the router.
type KeyListener func(ctx context.Context, ev *KeyEvent)

// PointerCapturer owns the pointer while it holds capture.
type PointerCapturer interface {
	// HandlePointer receives every pointer event while capture is held.
	HandlePointer(ctx context.Context, ev PointerEvent)
	// LostPointerCapture is called when capture is revoked externally.
	LostPointerCapture(ctx context.Context)
}

// Router is the window-level event registry: global key listeners and
// pointer capture. It is driven from the UI loop only and is not safe for
// concurrent use.
type Router struct {
	keyListeners map[int]KeyListener
	order        []int
	nextID       int
	capturer     PointerCapturer
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{keyListeners: make(map[int]KeyListener)}
}

// AddKeyListener registers fn and returns a function removing it.
// Removing twice is harmless.
func (r *Router) AddKeyListener(fn KeyListener) (remove func()) {
	id := r.nextID
	r.nextID++
	r.keyListeners[id] = fn
	r.order = append(r.order, id)

	return func() {
		if _, ok := r.keyListeners[id]; !ok {
			return
		}
		delete(r.keyListeners, id)
		for i, v := range r.order {
			if v == id {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
}

// KeyListenerCount returns the number of registered key listeners.
func (r *Router) KeyListenerCount() int {
	return len(r.keyListeners)
}

// DispatchKey delivers ev to every listener in registration order.
// Reports whether any listener prevented the default.
func (r *Router) DispatchKey(ctx context.Context, ev *KeyEvent) bool {
	ids := append([]int(nil), r.order...)
	for _, id := range ids {
		if fn, ok := r.keyListeners[id]; ok {
			fn(ctx, ev)
		}
	}
	return ev.DefaultPrevented()
}

// SetPointerCapture routes all pointer events to c until released.
// A previous capturer loses capture.
func (r *Router) SetPointerCapture(ctx context.Context, c PointerCapturer) {
	if r.capturer == c {
		return
	}
	if prev := r.capturer; prev != nil {
		r.capturer = nil
		prev.LostPointerCapture(ctx)
	}
	r.capturer = c
}

// ReleasePointerCapture drops capture if c holds it.
func (r *Router) ReleasePointerCapture(c PointerCapturer) {
	if r.capturer == c {
		r.capturer = nil
	}
}

// RevokePointerCapture takes capture away from whoever holds it, as happens
// when the window loses focus.
func (r *Router) RevokePointerCapture(ctx context.Context) {
	prev := r.capturer
	if prev == nil {
		return
	}
	r.capturer = nil
	logging.FromContext(ctx).Debug().Msg("pointer capture revoked")
	prev.LostPointerCapture(ctx)
}

// HasPointerCapture reports whether c holds capture.
func (r *Router) HasPointerCapture(c PointerCapturer) bool {
	return c != nil && r.capturer == c
}

// Captured reports whether anyone holds capture.
func (r *Router) Captured() bool {
	return r.capturer != nil
}

// DispatchPointer delivers ev to the capturer. Reports false when nobody
// holds capture, leaving hit testing to the caller.
func (r *Router) DispatchPointer(ctx context.Context, ev PointerEvent) bool {
	if r.capturer == nil {
		return false
	}
	r.capturer.HandlePointer(ctx, ev)
	return true
}
