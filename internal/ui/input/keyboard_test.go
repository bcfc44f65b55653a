package input_test

import (
	"context"
	"testing"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTabs(ids ...string) *usecase.ManageTabsUseCase {
	descs := make([]entity.TabDescriptor, len(ids))
	for i, id := range ids {
		descs[i] = entity.TabDescriptor{ID: entity.TabID(id), Title: id}
	}
	return usecase.NewManageTabsUseCase(descs...)
}

func mounted(t *testing.T, tabs *usecase.ManageTabsUseCase) (*input.Router, *input.KeyboardController) {
	t.Helper()
	r := input.NewRouter()
	kc := input.NewKeyboardController(r, tabs)
	kc.Mount()
	t.Cleanup(kc.Unmount)
	return r, kc
}

func TestKeyboardController_MountUnmount(t *testing.T) {
	r := input.NewRouter()
	kc := input.NewKeyboardController(r, newTabs())

	kc.Mount()
	kc.Mount()
	assert.Equal(t, 1, r.KeyListenerCount())
	assert.True(t, kc.Mounted())

	kc.Unmount()
	assert.Equal(t, 0, r.KeyListenerCount())
	assert.False(t, kc.Mounted())
}

func TestKeyboardController_TabCyclesAndWraps(t *testing.T) {
	ctx := testContext()
	tabs := newTabs("a", "b", "c")
	tabs.Activate(ctx, "a")
	r, _ := mounted(t, tabs)

	for range 3 {
		ev := input.NewKeyEvent("tab", input.ModNone)
		require.True(t, r.DispatchKey(ctx, ev))
	}
	assert.Equal(t, entity.TabID("a"), tabs.Snapshot().ActiveID())

	r.DispatchKey(ctx, input.NewKeyEvent("tab", input.ModShift))
	assert.Equal(t, entity.TabID("c"), tabs.Snapshot().ActiveID())

	for _, mods := range []input.Modifier{input.ModAlt, input.ModAlt | input.ModShift} {
		assert.False(t, r.DispatchKey(ctx, input.NewKeyEvent("tab", mods)), "mods %d", mods)
		assert.Equal(t, entity.TabID("c"), tabs.Snapshot().ActiveID())
	}
}

func TestKeyboardController_DigitJumps(t *testing.T) {
	ctx := testContext()
	tabs := newTabs("a", "b", "c")
	r, _ := mounted(t, tabs)

	r.DispatchKey(ctx, input.NewKeyEvent("2", input.ModNone))
	assert.Equal(t, entity.TabID("b"), tabs.Snapshot().ActiveID())

	ev := input.NewKeyEvent("9", input.ModNone)
	assert.True(t, r.DispatchKey(ctx, ev), "handled even when no tab is at that position")
	assert.Equal(t, entity.TabID("b"), tabs.Snapshot().ActiveID())

	ev = input.NewKeyEvent("0", input.ModNone)
	assert.False(t, r.DispatchKey(ctx, ev))

	assert.False(t, r.DispatchKey(ctx, input.NewKeyEvent("1", input.ModAlt)))
	assert.False(t, r.DispatchKey(ctx, input.NewKeyEvent("1", input.ModShift)))
	assert.Equal(t, entity.TabID("b"), tabs.Snapshot().ActiveID())

	assert.True(t, r.DispatchKey(ctx, input.NewKeyEvent("3", input.ModCtrl)))
	assert.Equal(t, entity.TabID("c"), tabs.Snapshot().ActiveID())
}

func TestKeyboardController_CloseRequiresCommand(t *testing.T) {
	ctx := testContext()
	tabs := newTabs("a", "b")
	r, _ := mounted(t, tabs)

	assert.False(t, r.DispatchKey(ctx, input.NewKeyEvent("w", input.ModNone)))
	assert.Equal(t, 2, tabs.Snapshot().Len())

	assert.True(t, r.DispatchKey(ctx, input.NewKeyEvent("w", input.ModCtrl)))
	assert.Equal(t, []entity.TabID{"a"}, tabs.Snapshot().IDs())

	assert.True(t, r.DispatchKey(ctx, input.NewKeyEvent("w", input.ModMeta)))
	assert.Equal(t, 0, tabs.Snapshot().Len())

	// Nothing left: still handled, still a no-op
	assert.True(t, r.DispatchKey(ctx, input.NewKeyEvent("w", input.ModCtrl)))
	assert.Equal(t, 0, tabs.Snapshot().Len())
}

func TestKeyboardController_SuppressedInTextEntry(t *testing.T) {
	ctx := testContext()
	keys := []struct {
		key  string
		mods input.Modifier
	}{
		{"tab", input.ModNone},
		{"tab", input.ModShift},
		{"1", input.ModNone},
		{"3", input.ModCtrl},
		{"w", input.ModCtrl},
		{"w", input.ModMeta},
		{"w", input.ModCtrl | input.ModShift},
	}

	for _, k := range keys {
		tabs := newTabs("a", "b", "c")
		r, _ := mounted(t, tabs)

		ev := input.NewKeyEvent(k.key, k.mods)
		ev.TextEntry = true

		assert.False(t, r.DispatchKey(ctx, ev), "key %q mods %d", k.key, k.mods)
		assert.Equal(t, []entity.TabID{"a", "b", "c"}, tabs.Snapshot().IDs())
		assert.Equal(t, entity.TabID("c"), tabs.Snapshot().ActiveID())
	}
}

func TestKeyboardController_CycleOnEmptyAndSingle(t *testing.T) {
	ctx := testContext()

	empty := newTabs()
	r, _ := mounted(t, empty)
	r.DispatchKey(ctx, input.NewKeyEvent("tab", input.ModNone))
	assert.Equal(t, entity.TabID(""), empty.Snapshot().ActiveID())

	single := newTabs("only")
	r, _ = mounted(t, single)
	r.DispatchKey(ctx, input.NewKeyEvent("tab", input.ModNone))
	r.DispatchKey(ctx, input.NewKeyEvent("tab", input.ModShift))
	assert.Equal(t, entity.TabID("only"), single.Snapshot().ActiveID())
}

func TestKeyboardController_UnmountedIgnoresKeys(t *testing.T) {
	ctx := testContext()
	tabs := newTabs("a", "b")
	r := input.NewRouter()
	kc := input.NewKeyboardController(r, tabs)
	kc.Mount()
	kc.Unmount()

	r.DispatchKey(ctx, input.NewKeyEvent("1", input.ModNone))
	assert.Equal(t, entity.TabID("b"), tabs.Snapshot().ActiveID())
}
