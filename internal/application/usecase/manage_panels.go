package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/domain/repository"
	"github.com/bnema/workbench/internal/logging"
)

// PanelKeyPrefix namespaces every persisted panel key.
const PanelKeyPrefix = "panel."

// PanelOpenKey returns the storage key of a panel's open flag.
func PanelOpenKey(side entity.PanelSide) string {
	return fmt.Sprintf("%s%s.open", PanelKeyPrefix, side)
}

// PanelWidthKey returns the storage key of a panel's width.
func PanelWidthKey(side entity.PanelSide) string {
	return fmt.Sprintf("%s%s.width", PanelKeyPrefix, side)
}

// ManagePanelsUseCase holds the layout of one side panel and mirrors every
// change into the key-value store.
//
// The in-memory state is authoritative. Storage failures are logged and
// otherwise ignored so a broken store never blocks a resize or toggle.
type ManagePanelsUseCase struct {
	side   entity.PanelSide
	bounds entity.PanelBounds
	store  repository.KeyValueStore
	state  entity.PanelState
	open   bool // default open flag
}

// NewManagePanelsUseCase creates the use case for one side. The state starts
// at defaults until Load is called.
func NewManagePanelsUseCase(
	side entity.PanelSide,
	bounds entity.PanelBounds,
	defaultOpen bool,
	store repository.KeyValueStore,
) *ManagePanelsUseCase {
	return &ManagePanelsUseCase{
		side:   side,
		bounds: bounds,
		store:  store,
		state:  entity.NewPanelState(side, bounds, defaultOpen),
		open:   defaultOpen,
	}
}

// Side returns the panel side.
func (uc *ManagePanelsUseCase) Side() entity.PanelSide {
	return uc.side
}

// Bounds returns the current width bounds.
func (uc *ManagePanelsUseCase) Bounds() entity.PanelBounds {
	return uc.bounds
}

// State returns the current panel state.
func (uc *ManagePanelsUseCase) State() entity.PanelState {
	return uc.state
}

// Load rehydrates the panel from storage. Missing or unparsable values keep
// their defaults and the stored width is re-clamped against current bounds.
func (uc *ManagePanelsUseCase) Load(ctx context.Context) entity.PanelState {
	log := logging.FromContext(logging.WithPanelSide(ctx, string(uc.side)))

	state := entity.NewPanelState(uc.side, uc.bounds, uc.open)

	if raw, ok := uc.read(ctx, PanelOpenKey(uc.side)); ok {
		if open, err := strconv.ParseBool(raw); err == nil {
			state = state.WithOpen(open)
		} else {
			log.Warn().Str("value", raw).Msg("corrupt panel open flag, using default")
		}
	}

	if raw, ok := uc.read(ctx, PanelWidthKey(uc.side)); ok {
		if width, err := strconv.Atoi(raw); err == nil {
			state = state.WithWidth(width, uc.bounds)
		} else {
			log.Warn().Str("value", raw).Msg("corrupt panel width, using default")
		}
	}

	uc.state = state
	log.Debug().
		Bool("open", state.IsOpen).
		Int("width", state.Width).
		Msg("panel layout loaded")
	return state
}

// Toggle flips the open flag and persists. Width is preserved.
func (uc *ManagePanelsUseCase) Toggle(ctx context.Context) entity.PanelState {
	return uc.apply(ctx, uc.state.Toggled())
}

// SetOpen sets the open flag and persists.
func (uc *ManagePanelsUseCase) SetOpen(ctx context.Context, open bool) entity.PanelState {
	return uc.apply(ctx, uc.state.WithOpen(open))
}

// SetWidth clamps and applies a raw width, then persists.
func (uc *ManagePanelsUseCase) SetWidth(ctx context.Context, width int) entity.PanelState {
	return uc.apply(ctx, uc.state.WithWidth(width, uc.bounds))
}

// Rebound swaps the bounds and re-clamps the current width, used when the
// configuration changes while the workspace is running.
func (uc *ManagePanelsUseCase) Rebound(ctx context.Context, bounds entity.PanelBounds, defaultOpen bool) entity.PanelState {
	uc.bounds = bounds
	uc.open = defaultOpen
	return uc.apply(ctx, uc.state.WithWidth(uc.state.Width, bounds))
}

// Reset deletes both persisted keys and returns the panel to its defaults.
// It reports the first storage error so callers outside the UI can surface it.
func (uc *ManagePanelsUseCase) Reset(ctx context.Context) (entity.PanelState, error) {
	uc.state = entity.NewPanelState(uc.side, uc.bounds, uc.open)
	if uc.store == nil {
		return uc.state, nil
	}
	for _, key := range []string{PanelOpenKey(uc.side), PanelWidthKey(uc.side)} {
		if err := uc.store.Delete(ctx, key); err != nil {
			return uc.state, fmt.Errorf("delete %s: %w", key, err)
		}
	}
	logging.FromContext(logging.WithPanelSide(ctx, string(uc.side))).Info().Msg("panel layout reset")
	return uc.state, nil
}

func (uc *ManagePanelsUseCase) apply(ctx context.Context, next entity.PanelState) entity.PanelState {
	if next == uc.state {
		return uc.state
	}
	uc.state = next
	uc.persist(ctx)
	return uc.state
}

// persist writes both fields. Errors are logged and swallowed.
func (uc *ManagePanelsUseCase) persist(ctx context.Context) {
	log := logging.FromContext(logging.WithPanelSide(ctx, string(uc.side)))
	if uc.store == nil {
		return
	}

	if err := uc.store.Set(ctx, PanelOpenKey(uc.side), strconv.FormatBool(uc.state.IsOpen)); err != nil {
		log.Warn().Err(err).Msg("failed to persist panel open flag")
	}
	if err := uc.store.Set(ctx, PanelWidthKey(uc.side), strconv.Itoa(uc.state.Width)); err != nil {
		log.Warn().Err(err).Msg("failed to persist panel width")
	}

	log.Debug().
		Bool("open", uc.state.IsOpen).
		Int("width", uc.state.Width).
		Msg("panel layout saved")
}

func (uc *ManagePanelsUseCase) read(ctx context.Context, key string) (string, bool) {
	if uc.store == nil {
		return "", false
	}
	raw, found, err := uc.store.Get(ctx, key)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to read panel layout")
		return "", false
	}
	return raw, found
}
