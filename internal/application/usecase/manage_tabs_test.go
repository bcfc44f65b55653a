package usecase_test

import (
	"testing"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func desc(id string) entity.TabDescriptor {
	return entity.TabDescriptor{ID: entity.TabID(id), Kind: entity.KindDocument, Title: id}
}

func ids(tl entity.TabList) []entity.TabID {
	return tl.IDs()
}

func TestManageTabsUseCase_OpenDistinctIDs_InsertionOrderLastActive(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase()

	uc.Open(ctx, desc("a"))
	uc.Open(ctx, desc("b"))
	uc.Open(ctx, desc("c"))

	snap := uc.Snapshot()
	assert.Equal(t, []entity.TabID{"a", "b", "c"}, ids(snap))
	assert.Equal(t, entity.TabID("c"), snap.ActiveID())
}

func TestManageTabsUseCase_ReopenOnlyChangesActive(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(desc("a"), desc("b"), desc("c"))

	uc.Open(ctx, entity.TabDescriptor{ID: "a", Title: "renamed"})

	snap := uc.Snapshot()
	assert.Equal(t, []entity.TabID{"a", "b", "c"}, ids(snap))
	assert.Equal(t, entity.TabID("a"), snap.ActiveID())
	tab, ok := snap.Find("a")
	require.True(t, ok)
	assert.Equal(t, "a", tab.Title)
}

func TestManageTabsUseCase_CloseActiveSelectsLeftNeighbour(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(desc("a"), desc("b"), desc("c"))
	uc.Activate(ctx, "b")

	uc.CloseActive(ctx)

	snap := uc.Snapshot()
	assert.Equal(t, []entity.TabID{"a", "c"}, ids(snap))
	assert.Equal(t, entity.TabID("a"), snap.ActiveID())
}

func TestManageTabsUseCase_CloseActiveOnEmptyIsNoop(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase()

	calls := 0
	uc.OnChange(func(_, _ entity.TabList) { calls++ })
	uc.CloseActive(ctx)
	uc.ActivateNext(ctx)
	uc.ActivatePrevious(ctx)

	assert.Equal(t, 0, uc.Snapshot().Len())
	assert.Equal(t, 0, calls)
}

func TestManageTabsUseCase_CycleThreeTimesWraps(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(desc("a"), desc("b"), desc("c"))
	uc.Activate(ctx, "a")

	for range 3 {
		uc.ActivateNext(ctx)
	}
	assert.Equal(t, entity.TabID("a"), uc.Snapshot().ActiveID())

	uc.ActivatePrevious(ctx)
	assert.Equal(t, entity.TabID("c"), uc.Snapshot().ActiveID())
}

func TestManageTabsUseCase_ActivateIndexOutOfRangeIsNoop(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(desc("a"), desc("b"))

	uc.ActivateIndex(ctx, 0)
	assert.Equal(t, entity.TabID("a"), uc.Snapshot().ActiveID())

	uc.ActivateIndex(ctx, 8)
	assert.Equal(t, entity.TabID("a"), uc.Snapshot().ActiveID())
}

func TestManageTabsUseCase_Reorder(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(desc("a"), desc("b"), desc("c"))

	uc.Reorder(ctx, "c", "a")

	assert.Equal(t, []entity.TabID{"c", "a", "b"}, ids(uc.Snapshot()))
	assert.Equal(t, entity.TabID("c"), uc.Snapshot().ActiveID())
}

func TestManageTabsUseCase_SetDirtyAndPinNotifyListeners(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(desc("a"))

	var seen []entity.TabList
	remove := uc.OnChange(func(_, next entity.TabList) { seen = append(seen, next) })

	uc.SetDirty(ctx, "a", true)
	uc.SetDirty(ctx, "a", true) // unchanged, no notification
	uc.TogglePin(ctx, "a")
	require.Len(t, seen, 2)

	tab, _ := uc.Snapshot().Find("a")
	assert.True(t, tab.Dirty)
	assert.True(t, tab.Pinned)

	remove()
	uc.SetDirty(ctx, "a", false)
	assert.Len(t, seen, 2)
}

func TestManageTabsUseCase_UnknownIDsAreNoops(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(desc("a"), desc("b"))
	before := ids(uc.Snapshot())

	uc.Close(ctx, "zzz")
	uc.Activate(ctx, "zzz")
	uc.TogglePin(ctx, "zzz")
	uc.SetDirty(ctx, "zzz", true)
	uc.Reorder(ctx, "zzz", "a")
	uc.Rename(ctx, "zzz", "x")

	assert.Equal(t, before, ids(uc.Snapshot()))
	assert.Equal(t, entity.TabID("b"), uc.Snapshot().ActiveID())
}

func TestManageTabsUseCase_ResetLeavesSingleDefaultTab(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(desc("a"), desc("b"), desc("c"))

	welcome := entity.TabDescriptor{ID: "welcome", Kind: entity.KindWelcome, Title: "Welcome"}
	uc.Reset(ctx, welcome)

	snap := uc.Snapshot()
	assert.Equal(t, []entity.TabID{"welcome"}, ids(snap))
	assert.Equal(t, entity.TabID("welcome"), snap.ActiveID())
}
