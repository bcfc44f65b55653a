package input_test

import (
	"context"
	"testing"

	"github.com/bnema/workbench/internal/ui/input"
	"github.com/stretchr/testify/assert"
)

type recordingCapturer struct {
	events []input.PointerEvent
	lost   int
}

func (r *recordingCapturer) HandlePointer(_ context.Context, ev input.PointerEvent) {
	r.events = append(r.events, ev)
}

func (r *recordingCapturer) LostPointerCapture(context.Context) {
	r.lost++
}

func TestRouter_KeyListenersAddRemove(t *testing.T) {
	ctx := context.Background()
	r := input.NewRouter()

	var calls []string
	removeA := r.AddKeyListener(func(_ context.Context, ev *input.KeyEvent) { calls = append(calls, "a:"+ev.Key) })
	r.AddKeyListener(func(_ context.Context, ev *input.KeyEvent) {
		calls = append(calls, "b:"+ev.Key)
		ev.PreventDefault()
	})
	assert.Equal(t, 2, r.KeyListenerCount())

	handled := r.DispatchKey(ctx, input.NewKeyEvent("x", input.ModNone))
	assert.True(t, handled)
	assert.Equal(t, []string{"a:x", "b:x"}, calls)

	removeA()
	removeA()
	assert.Equal(t, 1, r.KeyListenerCount())

	calls = nil
	r.DispatchKey(ctx, input.NewKeyEvent("y", input.ModNone))
	assert.Equal(t, []string{"b:y"}, calls)
}

func TestRouter_PointerCapture(t *testing.T) {
	ctx := context.Background()
	r := input.NewRouter()
	c := &recordingCapturer{}

	assert.False(t, r.DispatchPointer(ctx, input.PointerEvent{Kind: input.PointerMove}))

	r.SetPointerCapture(ctx, c)
	assert.True(t, r.HasPointerCapture(c))
	assert.True(t, r.DispatchPointer(ctx, input.PointerEvent{Kind: input.PointerMove, X: 3}))
	assert.Len(t, c.events, 1)

	r.ReleasePointerCapture(c)
	assert.False(t, r.Captured())
	assert.Equal(t, 0, c.lost)
}

func TestRouter_RevokeNotifiesCapturer(t *testing.T) {
	ctx := context.Background()
	r := input.NewRouter()
	c := &recordingCapturer{}

	r.SetPointerCapture(ctx, c)
	r.RevokePointerCapture(ctx)

	assert.Equal(t, 1, c.lost)
	assert.False(t, r.Captured())

	r.RevokePointerCapture(ctx)
	assert.Equal(t, 1, c.lost)
}

func TestRouter_NewCaptureStealsFromPrevious(t *testing.T) {
	ctx := context.Background()
	r := input.NewRouter()
	first, second := &recordingCapturer{}, &recordingCapturer{}

	r.SetPointerCapture(ctx, first)
	r.SetPointerCapture(ctx, second)

	assert.Equal(t, 1, first.lost)
	assert.True(t, r.HasPointerCapture(second))
}
