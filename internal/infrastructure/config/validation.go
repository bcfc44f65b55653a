package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	chromastyles "github.com/alecthomas/chroma/v2/styles"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validatePanel("panels.leading", config.Panels.Leading)...)
	validationErrors = append(validationErrors, validatePanel("panels.trailing", config.Panels.Trailing)...)
	validationErrors = append(validationErrors, validateWorkspace(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "disabled", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, fatal, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "text", "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: text, json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateStorage(config *Config) []string {
	switch config.Storage.Backend {
	case StorageSQLite, StorageFile, StorageMemory:
		return nil
	default:
		return []string{fmt.Sprintf(
			"storage.backend must be one of: sqlite, file, memory (got: %s)",
			config.Storage.Backend,
		)}
	}
}

func validatePanel(prefix string, p PanelConfig) []string {
	var validationErrors []string
	if p.MinWidth < 1 {
		validationErrors = append(validationErrors, prefix+".min_width must be positive")
	}
	if p.MaxWidth < p.MinWidth {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"%s.max_width (%d) must be >= min_width (%d)", prefix, p.MaxWidth, p.MinWidth,
		))
	}
	if p.DefaultWidth < p.MinWidth || p.DefaultWidth > p.MaxWidth {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"%s.default_width (%d) must be between min_width and max_width", prefix, p.DefaultWidth,
		))
	}
	return validationErrors
}

func validateWorkspace(config *Config) []string {
	if config.Workspace.MaxTargets < 1 {
		return []string{"workspace.max_targets must be positive"}
	}
	return nil
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	p := config.Appearance.Palette
	colors := []struct {
		name  string
		value string
	}{
		{"background", p.Background},
		{"surface", p.Surface},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
		{"warning", p.Warning},
	}
	for _, c := range colors {
		if c.value != "" && !hexColor.MatchString(c.value) {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"appearance.palette.%s must be a hex color like #RRGGBB (got: %s)", c.name, c.value,
			))
		}
	}

	if style := config.Appearance.CodeStyle; style != "" {
		if _, ok := chromastyles.Registry[style]; !ok {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"appearance.code_style must name a chroma style such as monokai or github (got: %s)", style,
			))
		}
	}
	return validationErrors
}
