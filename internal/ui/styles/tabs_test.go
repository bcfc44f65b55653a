package styles_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/config"
	"github.com/bnema/workbench/internal/ui/styles"
)

func tabList(ids ...string) entity.TabList {
	descs := make([]entity.TabDescriptor, len(ids))
	for i, id := range ids {
		descs[i] = entity.TabDescriptor{ID: entity.TabID(id), Title: id}
	}
	return entity.NewTabList(descs...)
}

func newBar() *styles.TabBar {
	return styles.NewTabBar(styles.NewThemeFromPalette(config.DefaultPalette()))
}

func TestTabBar_RegionsMatchRenderedCells(t *testing.T) {
	tl := tabList("alpha", "beta", "gamma")
	out, regions := newBar().Render(tl, 80, styles.DragState{})

	require.Len(t, regions, 3)
	plain := ansi.Strip(out)
	assert.Equal(t, 80, ansi.StringWidth(plain))

	for _, r := range regions {
		label := ansi.Cut(plain, r.Start, r.End)
		assert.Contains(t, label, string(r.ID))
	}
	assert.Equal(t, 0, regions[0].Start)
	assert.Equal(t, regions[0].End+1, regions[1].Start, "one separator cell between tabs")
}

func TestTabBar_Markers(t *testing.T) {
	tl := tabList("a", "b")
	tl = tl.TogglePin("a").SetDirty("b", true)

	out, regions := newBar().Render(tl, 60, styles.DragState{})
	plain := ansi.Strip(out)

	first := ansi.Cut(plain, regions[0].Start, regions[0].End)
	second := ansi.Cut(plain, regions[1].Start, regions[1].End)
	assert.True(t, strings.HasPrefix(first, " "+styles.PinMarker+" 1 a"))
	assert.Contains(t, second, "2 b "+styles.DirtyMarker)
}

func TestTabBar_OverflowKeepsActiveVisible(t *testing.T) {
	ids := []string{"one", "two", "three", "four", "five", "six", "seven", "eight"}
	tl := tabList(ids...) // "eight" active

	_, regions := newBar().Render(tl, 30, styles.DragState{})

	require.NotEmpty(t, regions)
	assert.Equal(t, entity.TabID("eight"), regions[len(regions)-1].ID)
	for _, r := range regions {
		assert.LessOrEqual(t, r.End, 30)
	}
}

func TestTabBar_LongTitlesTruncated(t *testing.T) {
	tl := entity.NewTabList(entity.TabDescriptor{ID: "x", Title: strings.Repeat("w", 80)})
	bar := newBar()

	_, regions := bar.Render(tl, 200, styles.DragState{})

	require.Len(t, regions, 1)
	// " 1 " + title + " "
	assert.Equal(t, 3+bar.MaxTitleWidth+1, regions[0].End-regions[0].Start)
}

func TestHitTest(t *testing.T) {
	regions := []styles.TabRegion{{ID: "a", Start: 0, End: 5}, {ID: "b", Start: 6, End: 10}}

	id, ok := styles.HitTest(regions, 4)
	assert.True(t, ok)
	assert.Equal(t, entity.TabID("a"), id)

	_, ok = styles.HitTest(regions, 5)
	assert.False(t, ok, "separator cell")

	id, _ = styles.HitTest(regions, 9)
	assert.Equal(t, entity.TabID("b"), id)
}

func TestTabBar_EmptyList(t *testing.T) {
	out, regions := newBar().Render(entity.TabList{}, 20, styles.DragState{})
	assert.Empty(t, regions)
	assert.Equal(t, 20, ansi.StringWidth(out))
}
