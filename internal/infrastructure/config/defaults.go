package config

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	// Panel widths are terminal cells
	defaultLeadingMinWidth      = 18
	defaultLeadingMaxWidth      = 60
	defaultLeadingDefaultWidth  = 30
	defaultTrailingMinWidth     = 20
	defaultTrailingMaxWidth     = 70
	defaultTrailingDefaultWidth = 34

	defaultTabTitle   = "Welcome"
	defaultMaxTargets = 5000
	defaultCodeStyle  = "monokai"
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultIgnorePatterns are excluded from project listings unless overridden.
func DefaultIgnorePatterns() []string {
	return []string{
		".git/**",
		"node_modules/**",
		"vendor/**",
		"**/.DS_Store",
		"**/*.swp",
	}
}

// DefaultPalette returns the built-in dark palette.
func DefaultPalette() Palette {
	return Palette{
		Background: "#0F0F0F",
		Surface:    "#1A1A1A",
		Text:       "#E0E0E0",
		Muted:      "#707070",
		Accent:     "#4ADE80",
		Border:     "#333333",
		Warning:    "#FBBF24",
	}
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: true,
			LogDir:        getDefaultLogDir(),
		},
		Storage: StorageConfig{
			Backend: StorageSQLite,
		},
		Panels: PanelsConfig{
			Leading: PanelConfig{
				MinWidth:     defaultLeadingMinWidth,
				MaxWidth:     defaultLeadingMaxWidth,
				DefaultWidth: defaultLeadingDefaultWidth,
				DefaultOpen:  true,
			},
			Trailing: PanelConfig{
				MinWidth:     defaultTrailingMinWidth,
				MaxWidth:     defaultTrailingMaxWidth,
				DefaultWidth: defaultTrailingDefaultWidth,
				DefaultOpen:  false,
			},
		},
		Workspace: WorkspaceConfig{
			DefaultTabTitle: defaultTabTitle,
			Projects:        []string{},
			Ignore:          DefaultIgnorePatterns(),
			MaxTargets:      defaultMaxTargets,
		},
		Appearance: AppearanceConfig{
			Palette:   DefaultPalette(),
			CodeStyle: defaultCodeStyle,
		},
	}
}
