package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
)

// PanelReport is the effective layout of one side next to what the store holds.
type PanelReport struct {
	State  entity.PanelState
	Bounds entity.PanelBounds
	// Stored maps the persisted field name ("open", "width") to its raw value.
	Stored map[string]string
}

// Panels builds the layout use cases of both sides from the configuration.
func (a *App) Panels() (leading, trailing *usecase.ManagePanelsUseCase) {
	build := func(side entity.PanelSide) *usecase.ManagePanelsUseCase {
		p := a.Config.Panels.Panel(side)
		return usecase.NewManagePanelsUseCase(side, p.Bounds(), p.DefaultOpen, a.Store)
	}
	return build(entity.SideLeading), build(entity.SideTrailing)
}

// LayoutReport loads both panels the way the workspace would at startup.
func (a *App) LayoutReport(ctx context.Context) ([]PanelReport, error) {
	stored, err := a.Store.List(ctx, usecase.PanelKeyPrefix)
	if err != nil {
		return nil, err
	}

	leading, trailing := a.Panels()
	reports := make([]PanelReport, 0, 2)
	for _, uc := range []*usecase.ManagePanelsUseCase{leading, trailing} {
		prefix := usecase.PanelKeyPrefix + string(uc.Side()) + "."
		fields := make(map[string]string)
		for key, value := range stored {
			if field, ok := strings.CutPrefix(key, prefix); ok {
				fields[field] = value
			}
		}
		reports = append(reports, PanelReport{
			State:  uc.Load(ctx),
			Bounds: uc.Bounds(),
			Stored: fields,
		})
	}
	return reports, nil
}

// ResetLayout deletes the persisted layout of both panels.
func (a *App) ResetLayout(ctx context.Context) error {
	leading, trailing := a.Panels()
	_, errLeading := leading.Reset(ctx)
	_, errTrailing := trailing.Reset(ctx)
	return errors.Join(errLeading, errTrailing)
}
