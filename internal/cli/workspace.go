package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/config"
	"github.com/bnema/workbench/internal/infrastructure/project"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/shell"
)

// ResolveProjects turns directories into projects. Without arguments the
// configured projects are used, then the working directory. Duplicates are
// dropped keeping the first occurrence.
func ResolveProjects(dirs, configured []string) ([]entity.Project, error) {
	if len(dirs) == 0 {
		dirs = configured
	}
	if len(dirs) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		dirs = []string{cwd}
	}

	projects := make([]entity.Project, 0, len(dirs))
	seen := make(map[entity.ProjectID]bool, len(dirs))
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("open project: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("open project: %s is not a directory", dir)
		}
		p, err := project.FromDir(dir)
		if err != nil {
			return nil, err
		}
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		projects = append(projects, p)
	}
	return projects, nil
}

// NewShell builds the workspace model for the given projects.
func (a *App) NewShell(ctx context.Context, projects []entity.Project) *shell.Model {
	leading, trailing := a.Panels()
	return shell.New(ctx, shell.Deps{
		Config:   *a.Config,
		Tabs:     usecase.NewManageTabsUseCase(),
		Leading:  leading,
		Trailing: trailing,
		Projects: projects,
		Source:   project.NewFSSource(ctx, a.Config.Workspace.Ignore, a.Config.Workspace.MaxTargets),
	})
}

// RunWorkspace runs the terminal workspace until the user quits or the
// process receives SIGTERM. Config file edits are applied live.
func (a *App) RunWorkspace(dirs []string) error {
	projects, err := ResolveProjects(dirs, a.Config.Workspace.Projects)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(a.ctx, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	defer func() { logging.LogPanic(ctx, recover()) }()

	model := a.NewShell(ctx, projects)
	defer model.Unmount()

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	if err := a.Manager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}
	a.Manager.OnConfigChange(func(cfg *config.Config) {
		log.Info().Msg("config file changed")
		p.Send(shell.ConfigChangedMsg{Config: *cfg})
	})

	log.Info().
		Str("version", a.BuildInfo.Version).
		Int("projects", len(projects)).
		Msg("starting workspace")

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			log.Info().Msg("terminated")
			return nil
		}
		return fmt.Errorf("run workspace: %w", err)
	}
	return nil
}
