package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Storage.Backend = "redis" },
			wantErr: "storage.backend",
		},
		{
			name:    "non-positive min width",
			mutate:  func(c *Config) { c.Panels.Leading.MinWidth = 0 },
			wantErr: "panels.leading.min_width",
		},
		{
			name:    "default outside bounds",
			mutate:  func(c *Config) { c.Panels.Trailing.DefaultWidth = 500 },
			wantErr: "panels.trailing.default_width",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad palette color",
			mutate:  func(c *Config) { c.Appearance.Palette.Accent = "green" },
			wantErr: "appearance.palette.accent",
		},
		{
			name:    "unknown code style",
			mutate:  func(c *Config) { c.Appearance.CodeStyle = "rainbow-unicorn" },
			wantErr: "appearance.code_style",
		},
		{
			name:    "zero max targets",
			mutate:  func(c *Config) { c.Workspace.MaxTargets = 0 },
			wantErr: "workspace.max_targets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_PaletteErrorsInFieldOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.Palette.Warning = "orange"
	cfg.Appearance.Palette.Background = "black"
	cfg.Appearance.Palette.Accent = "green"

	for range 10 {
		err := validateConfig(cfg)
		require.Error(t, err)
		msg := err.Error()

		bg := strings.Index(msg, "appearance.palette.background")
		accent := strings.Index(msg, "appearance.palette.accent")
		warning := strings.Index(msg, "appearance.palette.warning")
		require.True(t, bg >= 0 && accent >= 0 && warning >= 0, msg)
		assert.Less(t, bg, accent)
		assert.Less(t, accent, warning)
	}
}

func TestGenerateSchema_HasSections(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	s := string(data)
	for _, key := range []string{`"panels"`, `"storage"`, `"min_width"`, `"default_tab_title"`, `"sqlite"`} {
		assert.Contains(t, s, key)
	}
}
