package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	configDir string
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	watchCtx  context.Context
}

// NewManager creates a configuration manager reading from the XDG config dir.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager reading config.toml from dir.
func NewManagerWithDir(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// WORKBENCH_STORAGE_BACKEND, WORKBENCH_PANELS_LEADING_MAX_WIDTH, ...
	v.SetEnvPrefix("WORKBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv
	if err := v.BindEnv("logging.level", "WORKBENCH_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WORKBENCH_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "WORKBENCH_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind WORKBENCH_LOG_FORMAT: %w", err)
	}

	return &Manager{
		configDir: configDir,
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created from defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.reload(false)
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config: %w", createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// reload rebuilds the typed config from viper. Must be called with the
// write lock held.
func (m *Manager) reload(reread bool) error {
	if reread {
		if err := m.viper.ReadInConfig(); err != nil {
			return err
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	if err := ensureStoragePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureStoragePath(config *Config) error {
	if config.Storage.Path != "" {
		config.Storage.Path = expandHome(config.Storage.Path)
		return nil
	}

	var (
		path string
		err  error
	)
	switch StorageBackend(strings.ToLower(string(config.Storage.Backend))) {
	case StorageFile:
		path, err = GetLayoutFile()
	case StorageMemory:
		return nil
	default:
		path, err = GetDatabaseFile()
	}
	if err != nil {
		return fmt.Errorf("failed to get storage path: %w", err)
	}
	config.Storage.Path = path
	return nil
}

func normalizeConfig(config *Config) {
	switch backend := StorageBackend(strings.ToLower(strings.TrimSpace(string(config.Storage.Backend)))); backend {
	case "":
		config.Storage.Backend = StorageSQLite
	default:
		config.Storage.Backend = backend
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.LogDir != "" {
		config.Logging.LogDir = expandHome(config.Logging.LogDir)
	}

	config.Workspace.DefaultTabTitle = strings.TrimSpace(config.Workspace.DefaultTabTitle)
	if config.Workspace.DefaultTabTitle == "" {
		config.Workspace.DefaultTabTitle = defaultTabTitle
	}

	projects := make([]string, 0, len(config.Workspace.Projects))
	for _, p := range config.Workspace.Projects {
		if p = strings.TrimSpace(p); p != "" {
			projects = append(projects, filepath.Clean(expandHome(p)))
		}
	}
	config.Workspace.Projects = projects

	if strings.TrimSpace(config.Appearance.CodeStyle) == "" {
		config.Appearance.CodeStyle = defaultCodeStyle
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults as TOML.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, "config.toml")

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)

	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.path", defaults.Storage.Path)

	m.setPanelDefaults("panels.leading", defaults.Panels.Leading)
	m.setPanelDefaults("panels.trailing", defaults.Panels.Trailing)

	m.viper.SetDefault("workspace.default_tab_title", defaults.Workspace.DefaultTabTitle)
	m.viper.SetDefault("workspace.projects", defaults.Workspace.Projects)
	m.viper.SetDefault("workspace.ignore", defaults.Workspace.Ignore)
	m.viper.SetDefault("workspace.max_targets", defaults.Workspace.MaxTargets)

	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
	m.viper.SetDefault("appearance.palette.warning", p.Warning)
	m.viper.SetDefault("appearance.code_style", defaults.Appearance.CodeStyle)
}

func (m *Manager) setPanelDefaults(prefix string, p PanelConfig) {
	m.viper.SetDefault(prefix+".min_width", p.MinWidth)
	m.viper.SetDefault(prefix+".max_width", p.MaxWidth)
	m.viper.SetDefault(prefix+".default_width", p.DefaultWidth)
	m.viper.SetDefault(prefix+".default_open", p.DefaultOpen)
}
