package usecase

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// TabChangeListener is notified after every transition that changed state.
type TabChangeListener func(prev, next entity.TabList)

// ManageTabsUseCase owns the workspace tab collection.
//
// It is the single writer of the current TabList: controllers call it,
// it applies the pure transition and notifies listeners. No operation
// returns an error; unknown ids and empty collections degrade to no-ops.
type ManageTabsUseCase struct {
	tabs      entity.TabList
	listeners []TabChangeListener
}

// NewManageTabsUseCase creates a tab store seeded with descriptors.
func NewManageTabsUseCase(initial ...entity.TabDescriptor) *ManageTabsUseCase {
	return &ManageTabsUseCase{tabs: entity.NewTabList(initial...)}
}

// Snapshot returns the current tab list. The value is immutable.
func (uc *ManageTabsUseCase) Snapshot() entity.TabList {
	return uc.tabs
}

// OnChange registers a listener and returns a function removing it.
func (uc *ManageTabsUseCase) OnChange(fn TabChangeListener) (remove func()) {
	uc.listeners = append(uc.listeners, fn)
	idx := len(uc.listeners) - 1
	return func() {
		if idx < len(uc.listeners) {
			uc.listeners[idx] = nil
		}
	}
}

// Open activates the tab for desc, creating it when needed.
func (uc *ManageTabsUseCase) Open(ctx context.Context, desc entity.TabDescriptor) {
	log := logging.FromContext(logging.WithTabID(ctx, string(desc.ID)))
	existed := uc.tabs.IndexOf(desc.ID) >= 0

	uc.apply(uc.tabs.Open(desc))

	if existed {
		log.Debug().Msg("tab already open, activated")
		return
	}
	log.Info().
		Str("kind", string(desc.Kind)).
		Str("title", desc.Title).
		Int("position", uc.tabs.IndexOf(desc.ID)).
		Msg("tab opened")
}

// Close removes a tab by id.
func (uc *ManageTabsUseCase) Close(ctx context.Context, id entity.TabID) {
	log := logging.FromContext(logging.WithTabID(ctx, string(id)))

	if !uc.apply(uc.tabs.Close(id)) {
		log.Debug().Msg("close ignored, tab not found")
		return
	}
	log.Info().
		Str("new_active", string(uc.tabs.ActiveID())).
		Int("remaining", uc.tabs.Len()).
		Msg("tab closed")
}

// CloseActive closes the active tab, if any.
func (uc *ManageTabsUseCase) CloseActive(ctx context.Context) {
	if id := uc.tabs.ActiveID(); id != "" {
		uc.Close(ctx, id)
	}
}

// Activate switches the active tab.
func (uc *ManageTabsUseCase) Activate(ctx context.Context, id entity.TabID) {
	from := uc.tabs.ActiveID()
	uc.apply(uc.tabs.Activate(id))

	logging.FromContext(ctx).Debug().
		Str("from", string(from)).
		Str("to", string(uc.tabs.ActiveID())).
		Msg("tab activated")
}

// ActivateIndex activates the tab at a zero-based position.
func (uc *ManageTabsUseCase) ActivateIndex(ctx context.Context, index int) {
	tab, ok := uc.tabs.At(index)
	if !ok {
		logging.FromContext(ctx).Debug().Int("index", index).Msg("invalid tab index")
		return
	}
	uc.Activate(ctx, tab.ID)
}

// ActivateNext activates the next tab, wrapping around.
func (uc *ManageTabsUseCase) ActivateNext(ctx context.Context) {
	if next := uc.tabs.Next(); next != "" {
		uc.Activate(ctx, next)
	}
}

// ActivatePrevious activates the previous tab, wrapping around.
func (uc *ManageTabsUseCase) ActivatePrevious(ctx context.Context) {
	if prev := uc.tabs.Previous(); prev != "" {
		uc.Activate(ctx, prev)
	}
}

// TogglePin flips the pinned state of a tab.
func (uc *ManageTabsUseCase) TogglePin(ctx context.Context, id entity.TabID) {
	if !uc.apply(uc.tabs.TogglePin(id)) {
		return
	}
	tab, _ := uc.tabs.Find(id)
	logging.FromContext(logging.WithTabID(ctx, string(id))).Info().
		Bool("pinned", tab.Pinned).
		Msg("tab pin state changed")
}

// SetDirty records unsaved state reported by the tab's content owner.
// It implements port.DirtySink.
func (uc *ManageTabsUseCase) SetDirty(ctx context.Context, id entity.TabID, dirty bool) {
	if tab, ok := uc.tabs.Find(id); !ok || tab.Dirty == dirty {
		return
	}
	uc.apply(uc.tabs.SetDirty(id, dirty))
	logging.FromContext(logging.WithTabID(ctx, string(id))).Debug().
		Bool("dirty", dirty).
		Msg("tab dirty state changed")
}

// Rename changes a tab title.
func (uc *ManageTabsUseCase) Rename(ctx context.Context, id entity.TabID, title string) {
	if uc.apply(uc.tabs.Rename(id, title)) {
		logging.FromContext(logging.WithTabID(ctx, string(id))).Debug().
			Str("title", title).
			Msg("tab renamed")
	}
}

// Reorder moves source into target's former position.
func (uc *ManageTabsUseCase) Reorder(ctx context.Context, sourceID, targetID entity.TabID) {
	log := logging.FromContext(ctx)

	if !uc.apply(uc.tabs.Reorder(sourceID, targetID)) {
		log.Debug().
			Str("source", string(sourceID)).
			Str("target", string(targetID)).
			Msg("reorder ignored")
		return
	}
	log.Info().
		Str("tab_id", string(sourceID)).
		Int("position", uc.tabs.IndexOf(sourceID)).
		Msg("tab moved")
}

// Reset replaces the collection with a single default tab, as happens when
// the workspace switches project.
func (uc *ManageTabsUseCase) Reset(ctx context.Context, desc entity.TabDescriptor) {
	closed := uc.tabs.Len()
	uc.apply(entity.ResetTo(desc))

	logging.FromContext(ctx).Info().
		Int("closed", closed).
		Str("default_tab", string(desc.ID)).
		Msg("workspace reset")
}

// apply swaps in next and notifies listeners. Reports whether anything
// observable changed.
func (uc *ManageTabsUseCase) apply(next entity.TabList) bool {
	prev := uc.tabs
	if sameTabList(prev, next) {
		return false
	}
	uc.tabs = next
	for _, fn := range uc.listeners {
		if fn != nil {
			fn(prev, next)
		}
	}
	return true
}

func sameTabList(a, b entity.TabList) bool {
	if a.ActiveID() != b.ActiveID() || a.Len() != b.Len() {
		return false
	}
	at, bt := a.Tabs(), b.Tabs()
	for i := range at {
		x, y := at[i], bt[i]
		if x.ID != y.ID || x.Pinned != y.Pinned || x.Dirty != y.Dirty ||
			x.Title != y.Title || x.Kind != y.Kind || x.Group != y.Group {
			return false
		}
	}
	return true
}
