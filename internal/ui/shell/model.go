// Package shell hosts the workspace in a Bubble Tea program: tab bar,
// file navigator, content area, inspector and the resize handles between
// them.
package shell

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/config"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/content"
	"github.com/bnema/workbench/internal/ui/input"
	"github.com/bnema/workbench/internal/ui/styles"
)

// WelcomeTabID is the id of the default tab a workspace starts with.
const WelcomeTabID entity.TabID = "welcome"

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Deps are the collaborators of the shell.
type Deps struct {
	Config   config.Config
	Tabs     *usecase.ManageTabsUseCase
	Leading  *usecase.ManagePanelsUseCase
	Trailing *usecase.ManagePanelsUseCase
	Projects []entity.Project
	Source   port.ProjectSource
}

// ConfigChangedMsg carries a reloaded configuration into the program.
type ConfigChangedMsg struct {
	Config config.Config
}

// targetsLoadedMsg is sent when a project walk finishes.
type targetsLoadedMsg struct {
	projectID entity.ProjectID
	targets   []entity.Target
	err       error
}

// Model is the Bubble Tea model of the workspace.
type Model struct {
	ctx   context.Context
	cfg   config.Config
	theme *styles.Theme
	keys  KeyMap
	help  help.Model

	tabs     *usecase.ManageTabsUseCase
	leading  *usecase.ManagePanelsUseCase
	trailing *usecase.ManagePanelsUseCase
	projects []entity.Project
	project  int
	source   port.ProjectSource

	router         *input.Router
	keyboard       *input.KeyboardController
	drag           *input.DragController
	resizeLeading  *input.ResizeController
	resizeTrailing *input.ResizeController

	content   *content.Registry
	documents *content.Document
	notes     *content.Notes
	nav       navigator
	insp      inspector
	tabBar    *styles.TabBar
	regions   []styles.TabRegion

	geo               geometry
	showHelp          bool
	status            string
	removeTabListener func()
	mounted           bool
}

var _ tea.Model = (*Model)(nil)

// New creates the shell and mounts it: the keyboard controller is
// registered, both panels are loaded from storage and the tab store is
// reset to the welcome tab.
func New(ctx context.Context, deps Deps) *Model {
	ctx = logging.WithComponent(ctx, "shell")
	theme := styles.NewTheme(&deps.Config)

	m := &Model{
		ctx:      ctx,
		cfg:      deps.Config,
		theme:    theme,
		keys:     DefaultKeyMap(),
		help:     styles.NewStyledHelp(theme),
		tabs:     deps.Tabs,
		leading:  deps.Leading,
		trailing: deps.Trailing,
		projects: deps.Projects,
		source:   deps.Source,
		router:   input.NewRouter(),
		nav:      newNavigator(theme),
		insp:     inspector{outline: content.NewMarkdownOutline()},
		tabBar:   styles.NewTabBar(theme),
	}

	m.keyboard = input.NewKeyboardController(m.router, m.tabs)
	m.drag = input.NewDragController(m.tabs)
	viewport := func() entity.Viewport { return m.geo.resizeViewport() }
	m.resizeLeading = input.NewResizeController(m.router, m.leading, viewport)
	m.resizeTrailing = input.NewResizeController(m.router, m.trailing, viewport)

	m.documents = content.NewDocument(theme, deps.Config.Appearance.CodeStyle)
	m.notes = content.NewNotes(theme, m.tabs)
	m.content = content.NewRegistry(theme)
	m.content.Register(entity.KindWelcome, content.NewWelcome(theme))
	m.content.Register(entity.KindDocument, m.documents)
	m.content.Register(entity.KindArtifact, content.NewArtifact(theme))
	m.content.Register(entity.KindNote, m.notes)

	m.mount()
	m.geo = computeGeometry(defaultWidth, defaultHeight, m.leading.State(), m.trailing.State())
	return m
}

func (m *Model) mount() {
	if m.mounted {
		return
	}
	m.keyboard.Mount()
	m.leading.Load(m.ctx)
	m.trailing.Load(m.ctx)
	m.removeTabListener = m.tabs.OnChange(m.onTabsChanged)
	m.tabs.Reset(m.projectContext(), m.welcomeTab())
	m.mounted = true

	project, _ := m.currentProject()
	logging.FromContext(m.ctx).Info().
		Str("project", project.Name).
		Int("projects", len(m.projects)).
		Msg("workspace mounted")
}

// Unmount removes every listener the shell registered.
func (m *Model) Unmount() {
	if !m.mounted {
		return
	}
	m.keyboard.Unmount()
	if m.removeTabListener != nil {
		m.removeTabListener()
		m.removeTabListener = nil
	}
	m.router.RevokePointerCapture(m.ctx)
	m.drag.Cancel()
	m.mounted = false
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadTargets(), m.windowTitle())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.geo.Width, m.geo.Height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case targetsLoadedMsg:
		m.handleTargetsLoaded(msg)
	case ConfigChangedMsg:
		m.applyConfig(msg.Config)
	case tea.BlurMsg:
		m.router.RevokePointerCapture(m.ctx)
		m.drag.Cancel()
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	default:
		cmd = m.forwardToFocused(msg)
	}

	m.relayout()
	return m, cmd
}

// relayout recomputes geometry and the inspector after any state change.
func (m *Model) relayout() {
	m.geo = computeGeometry(m.geo.Width, m.geo.Height, m.leading.State(), m.trailing.State())
	project, _ := m.currentProject()
	active, ok := m.tabs.Snapshot().Active()
	m.insp.refresh(m.ctx, project, active, ok)
}

func (m *Model) handleTargetsLoaded(msg targetsLoadedMsg) {
	project, ok := m.currentProject()
	if !ok || project.ID != msg.projectID {
		return
	}
	log := logging.FromContext(m.projectContext())
	if msg.err != nil {
		log.Warn().Err(msg.err).Msg("failed to list project files")
	} else {
		log.Debug().Int("targets", len(msg.targets)).Msg("project files loaded")
	}
	m.nav.setTargets(msg.targets, msg.err)
}

// forwardToFocused hands non-input messages such as cursor blinks to the
// widget holding focus.
func (m *Model) forwardToFocused(msg tea.Msg) tea.Cmd {
	switch {
	case m.nav.focused():
		return m.nav.update(msg)
	case m.noteFocused():
		return m.notes.Update(m.ctx, msg)
	}
	return nil
}

func (m *Model) applyConfig(cfg config.Config) {
	m.cfg = cfg
	*m.theme = *styles.NewTheme(&cfg)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = m.geo.Width
	m.documents.SetCodeStyle(cfg.Appearance.CodeStyle)
	m.leading.Rebound(m.ctx, cfg.Panels.Leading.Bounds(), cfg.Panels.Leading.DefaultOpen)
	m.trailing.Rebound(m.ctx, cfg.Panels.Trailing.Bounds(), cfg.Panels.Trailing.DefaultOpen)
	if m.tabs.Snapshot().IndexOf(WelcomeTabID) >= 0 {
		m.tabs.Rename(m.ctx, WelcomeTabID, cfg.Workspace.DefaultTabTitle)
	}
	logging.FromContext(m.ctx).Info().Msg("configuration applied")
}

// onTabsChanged drops content state of closed tabs and leaves a note
// editor that is no longer the active tab.
func (m *Model) onTabsChanged(_, next entity.TabList) {
	m.notes.Retain(next)
	m.documents.Retain(next)
	if id, ok := m.notes.Focused(); ok && next.ActiveID() != id {
		m.notes.Blur()
	}
}

func (m *Model) welcomeTab() entity.TabDescriptor {
	return entity.TabDescriptor{
		ID:    WelcomeTabID,
		Kind:  entity.KindWelcome,
		Title: m.cfg.Workspace.DefaultTabTitle,
		Group: entity.GroupPrimary,
	}
}

func (m *Model) currentProject() (entity.Project, bool) {
	if len(m.projects) == 0 {
		return entity.Project{}, false
	}
	return m.projects[m.project], true
}

func (m *Model) projectContext() context.Context {
	if project, ok := m.currentProject(); ok {
		return logging.WithProject(m.ctx, string(project.ID))
	}
	return m.ctx
}

func (m *Model) loadTargets() tea.Cmd {
	project, ok := m.currentProject()
	if !ok || m.source == nil {
		m.nav.setTargets(nil, nil)
		return nil
	}
	ctx, source := m.projectContext(), m.source
	return func() tea.Msg {
		targets, err := source.Targets(ctx, project)
		return targetsLoadedMsg{projectID: project.ID, targets: targets, err: err}
	}
}

func (m *Model) windowTitle() tea.Cmd {
	if project, ok := m.currentProject(); ok {
		return tea.SetWindowTitle("workbench · " + project.Name)
	}
	return tea.SetWindowTitle("workbench")
}

// switchProject moves to another project and resets the workspace.
func (m *Model) switchProject(delta int) tea.Cmd {
	if len(m.projects) < 2 {
		m.status = "no other project configured"
		return nil
	}
	m.project = (m.project + delta + len(m.projects)) % len(m.projects)
	m.router.RevokePointerCapture(m.ctx)
	m.drag.Cancel()
	m.notes.Blur()
	m.nav.reset()
	m.insp.invalidate()
	m.tabs.Reset(m.projectContext(), m.welcomeTab())

	project, _ := m.currentProject()
	m.status = "switched to " + project.Name
	logging.FromContext(m.projectContext()).Info().Str("name", project.Name).Msg("project switched")
	return tea.Batch(m.loadTargets(), m.windowTitle())
}

func (m *Model) openTarget(target entity.Target) {
	m.tabs.Open(m.projectContext(), target.Descriptor())
}

func (m *Model) noteFocused() bool {
	_, ok := m.notes.Focused()
	return ok
}

// textEntry reports whether a text-accepting widget holds focus.
func (m *Model) textEntry() bool {
	return m.nav.focused() || m.noteFocused()
}

func (m *Model) quit() tea.Cmd {
	m.Unmount()
	logging.FromContext(m.ctx).Info().Msg("workspace closed")
	return tea.Quit
}
