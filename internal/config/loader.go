package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"tintshade/internal/color"
	"tintshade/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/tintshade"
	projectConfigDir = ".tintshade"
	configFileName   = "config.yaml"
	dotenvFileName   = ".env"
)

// Environment variables applied after the YAML layers.
const (
	EnvBaseColor = "TINTSHADE_BASE_COLOR"
	EnvTints     = "TINTSHADE_TINTS"
	EnvShades    = "TINTSHADE_SHADES"
	EnvFormat    = "TINTSHADE_FORMAT"
	EnvExportDir = "TINTSHADE_EXPORT_DIR"
	EnvLogLevel  = "TINTSHADE_LOG_LEVEL"
)

// LoadConfig layers default, user and project settings, applies environment
// overrides and validates the result.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		logging.Warn(logging.SubsystemConfig, "Could not determine user config path: %v", err)
	} else if config, err = mergeConfigFile(config, userConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn(logging.SubsystemConfig, "Could not determine project config path: %v", err)
	} else if config, err = mergeConfigFile(config, projectConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	return finalize(config)
}

// LoadConfigFromPath overlays the single file at path onto the defaults
// instead of the user and project layers. The file must exist.
func LoadConfigFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config %s: %w", path, err)
	}
	config, err := mergeConfigs(GetDefaultConfig(), data)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing config %s: %w", path, err)
	}
	logging.Debug(logging.SubsystemConfig, "Loaded configuration from %s", path)
	return finalize(config)
}

// finalize applies environment overrides, canonicalises colors and validates.
func finalize(config Config) (Config, error) {
	env, err := readEnvironment()
	if err != nil {
		return Config{}, err
	}
	if config, err = applyEnv(config, env); err != nil {
		return Config{}, err
	}

	if config, err = normalizeColors(config); err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

var getDotenvPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, dotenvFileName), nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// mergeConfigFile overlays the YAML file at path onto base. A missing file
// leaves base untouched.
func mergeConfigFile(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return Config{}, err
	}
	logging.Debug(logging.SubsystemConfig, "Loading config layer %s", path)
	return mergeConfigs(base, data)
}

// mergeConfigs decodes data on top of base: keys present in data win, absent
// keys keep the base value. Presets are merged by name.
func mergeConfigs(base Config, data []byte) (Config, error) {
	merged := base
	merged.Presets = nil
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return Config{}, err
	}

	var overlay struct {
		Presets []Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, err
	}
	merged.Presets = mergePresets(base.Presets, overlay.Presets)
	return merged, nil
}

// mergePresets keeps base order, replaces same-named entries and appends new ones.
func mergePresets(base, overlay []Preset) []Preset {
	out := make([]Preset, len(base))
	copy(out, base)
	for _, p := range overlay {
		replaced := false
		for i := range out {
			if strings.EqualFold(out[i].Name, p.Name) {
				out[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, p)
		}
	}
	return out
}

// readEnvironment returns the TINTSHADE_* variables from a .env file in the
// working directory, with the process environment taking precedence.
func readEnvironment() (map[string]string, error) {
	env := map[string]string{}

	if path, err := getDotenvPath(); err == nil {
		values, err := godotenv.Read(path)
		switch {
		case err == nil:
			for k, v := range values {
				env[k] = v
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}
	}

	for _, key := range []string{EnvBaseColor, EnvTints, EnvShades, EnvFormat, EnvExportDir, EnvLogLevel} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

func applyEnv(config Config, env map[string]string) (Config, error) {
	if v := env[EnvBaseColor]; v != "" {
		config.BaseColor = v
	}
	if v := env[EnvTints]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvTints, err)
		}
		config.Tints = n
	}
	if v := env[EnvShades]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvShades, err)
		}
		config.Shades = n
	}
	if v := env[EnvFormat]; v != "" {
		config.Format = v
	}
	if v := env[EnvExportDir]; v != "" {
		config.Export.Directory = v
	}
	if v := env[EnvLogLevel]; v != "" {
		config.LogLevel = v
	}
	return config, nil
}

// normalizeColors canonicalises the base and preset colors so that shorthand
// like "#fff" in a config file is accepted.
func normalizeColors(config Config) (Config, error) {
	base, err := color.Normalize(config.BaseColor)
	if err != nil {
		return Config{}, fmt.Errorf("%w: baseColor: %v", ErrInvalidConfig, err)
	}
	config.BaseColor = base

	presets := make([]Preset, len(config.Presets))
	for i, p := range config.Presets {
		c, err := color.Normalize(p.Color)
		if err != nil {
			return Config{}, fmt.Errorf("%w: preset %q: %v", ErrInvalidConfig, p.Name, err)
		}
		presets[i] = Preset{Name: p.Name, Color: c}
	}
	config.Presets = presets
	return config, nil
}
