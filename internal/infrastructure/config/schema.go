package config

import (
	"github.com/bnema/workbench/internal/domain/entity"
)

// Config represents the complete configuration for workbench.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Storage    StorageConfig    `mapstructure:"storage" toml:"storage" json:"storage"`
	Panels     PanelsConfig     `mapstructure:"panels" toml:"panels" json:"panels"`
	Workspace  WorkspaceConfig  `mapstructure:"workspace" toml:"workspace" json:"workspace"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=text,enum=json"`
	// EnableFileLog writes the session log under LogDir. The terminal is
	// owned by the UI, so this is the only way to see logs while it runs.
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
}

// StorageBackend selects where panel layout is persisted.
type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageFile   StorageBackend = "file"
	StorageMemory StorageBackend = "memory"
)

// StorageConfig holds layout persistence settings.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=sqlite,enum=file,enum=memory"`
	// Path of the database or YAML file. Empty selects the XDG default.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}

// PanelsConfig holds both side panels.
type PanelsConfig struct {
	Leading  PanelConfig `mapstructure:"leading" toml:"leading" json:"leading"`
	Trailing PanelConfig `mapstructure:"trailing" toml:"trailing" json:"trailing"`
}

// PanelConfig holds width bounds (terminal cells) and initial visibility.
type PanelConfig struct {
	MinWidth     int  `mapstructure:"min_width" toml:"min_width" json:"min_width" jsonschema:"minimum=1"`
	MaxWidth     int  `mapstructure:"max_width" toml:"max_width" json:"max_width" jsonschema:"minimum=1"`
	DefaultWidth int  `mapstructure:"default_width" toml:"default_width" json:"default_width" jsonschema:"minimum=1"`
	DefaultOpen  bool `mapstructure:"default_open" toml:"default_open" json:"default_open"`
}

// Bounds converts the panel settings into domain bounds.
func (p PanelConfig) Bounds() entity.PanelBounds {
	return entity.PanelBounds{
		Min:     p.MinWidth,
		Max:     p.MaxWidth,
		Default: p.DefaultWidth,
	}
}

// Panel returns the configuration of one side.
func (p PanelsConfig) Panel(side entity.PanelSide) PanelConfig {
	if side == entity.SideTrailing {
		return p.Trailing
	}
	return p.Leading
}

// WorkspaceConfig controls tabs and project discovery.
type WorkspaceConfig struct {
	// DefaultTabTitle is the title of the tab a fresh or reset workspace opens with.
	DefaultTabTitle string `mapstructure:"default_tab_title" toml:"default_tab_title" json:"default_tab_title"`
	// Projects lists project root directories. Command-line arguments take precedence.
	Projects []string `mapstructure:"projects" toml:"projects" json:"projects,omitempty"`
	// Ignore holds doublestar globs, relative to the project root, excluded from the navigator.
	Ignore []string `mapstructure:"ignore" toml:"ignore" json:"ignore,omitempty"`
	// MaxTargets caps the number of files listed per project.
	MaxTargets int `mapstructure:"max_targets" toml:"max_targets" json:"max_targets" jsonschema:"minimum=1"`
}

// Palette holds hex colors for the terminal UI.
type Palette struct {
	Background string `mapstructure:"background" toml:"background" json:"background"`
	Surface    string `mapstructure:"surface" toml:"surface" json:"surface"`
	Text       string `mapstructure:"text" toml:"text" json:"text"`
	Muted      string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent     string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border     string `mapstructure:"border" toml:"border" json:"border"`
	Warning    string `mapstructure:"warning" toml:"warning" json:"warning"`
}

// AppearanceConfig holds UI styling preferences.
type AppearanceConfig struct {
	Palette Palette `mapstructure:"palette" toml:"palette" json:"palette"`
	// CodeStyle names the chroma style used to highlight documents.
	CodeStyle string `mapstructure:"code_style" toml:"code_style" json:"code_style"`
}
