package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tintshade/internal/color"
	"tintshade/internal/config"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name       string
		debug      bool
		logLevel   string
		configPath string
	}{
		{
			name:       "full configuration",
			debug:      true,
			logLevel:   "warn",
			configPath: "/tmp/tintshade.yaml",
		},
		{
			name: "minimal configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.debug, tt.logLevel, tt.configPath)

			if cfg.Debug != tt.debug {
				t.Errorf("Debug = %v, want %v", cfg.Debug, tt.debug)
			}
			if cfg.LogLevel != tt.logLevel {
				t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, tt.logLevel)
			}
			if cfg.ConfigPath != tt.configPath {
				t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, tt.configPath)
			}
			if cfg.Settings != nil {
				t.Error("Settings should be nil before loading")
			}
		})
	}
}

// isolate keeps the developer's own configuration out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, key := range []string{config.EnvBaseColor, config.EnvTints, config.EnvShades, config.EnvFormat, config.EnvExportDir, config.EnvLogLevel} {
		t.Setenv(key, "")
	}
	return dir
}

func newTestApp(t *testing.T, cfg *Config) (*Application, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg.LogOutput = &buf
	application, err := NewApplication(cfg)
	require.NoError(t, err)
	return application, &buf
}

func TestNewApplicationDefaults(t *testing.T) {
	isolate(t)
	application, _ := newTestApp(t, NewConfig(false, "", ""))

	settings := application.Settings()
	assert.Equal(t, config.DefaultBaseColor, settings.BaseColor)
	assert.Equal(t, config.DefaultVariants, settings.Tints)
	assert.Equal(t, config.DefaultToolName, application.Exporter().Tool)
}

func TestNewApplicationInvalidLogLevel(t *testing.T) {
	isolate(t)
	_, err := NewApplication(&Config{LogLevel: "chatty", LogOutput: &bytes.Buffer{}})
	assert.Error(t, err)
}

func TestNewApplicationConfigPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\nmaxVariants: 5\ntints: 3\nshades: 3\n"), 0644))

	application, buf := newTestApp(t, NewConfig(false, "", path))
	assert.Equal(t, 5, application.Settings().MaxVariants)

	_, err := application.Palette("#3b82f6", 2, 1)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Generated 2 tints and 1 shades", "configured debug level applies")

	_, err = NewApplication(&Config{ConfigPath: filepath.Join(dir, "missing.yaml"), LogOutput: buf})
	assert.Error(t, err)
}

func TestLogLevelFlagWinsOverConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\n"), 0644))

	application, buf := newTestApp(t, NewConfig(false, "error", path))
	_, err := application.Palette("#3b82f6", 1, 1)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Generated")
}

func TestResolveBase(t *testing.T) {
	isolate(t)
	application, _ := newTestApp(t, NewConfig(false, "", ""))

	got, err := application.ResolveBase("FFF", "")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", got)

	_, err = application.ResolveBase("blurple", "")
	assert.ErrorIs(t, err, color.ErrInvalidColorFormat)

	got, err = application.ResolveBase("", "royal purple")
	require.NoError(t, err)
	assert.Equal(t, "#8b5cf6", got)

	_, err = application.ResolveBase("", "Neon")
	assert.Error(t, err)

	got, err = application.ResolveBase("", "")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBaseColor, got)
}

func TestPaletteRespectsMaximum(t *testing.T) {
	isolate(t)
	application, _ := newTestApp(t, NewConfig(false, "", ""))

	p, err := application.Palette("#3b82f6", 3, 0)
	require.NoError(t, err)
	assert.Len(t, p.Tints, 3)
	assert.Empty(t, p.Shades)

	_, err = application.Palette("#3b82f6", config.DefaultMaxVariants+1, 0)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = application.Palette("#3b82f6", 0, -1)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
