package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported config file formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// LoadDodger loads Dodger configuration.
// Search order: customPath -> ~/.arcade/configs/dodger.{yaml,toml} ->
// ./configs/dodger.{yaml,toml} -> embedded default.
// Files only need to set the keys they change; everything else keeps its
// default value. The result is validated.
func LoadDodger(customPath string) (DodgerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseDodger(data, FormatForPath(customPath))
		if err != nil {
			return DodgerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := make([]string, 0, 4)
	for _, name := range []string{"dodger.yaml", "dodger.toml"} {
		if p := userConfigPath(name); p != "" {
			candidates = append(candidates, p)
		}
	}
	candidates = append(candidates,
		filepath.Join("configs", "dodger.yaml"),
		filepath.Join("configs", "dodger.toml"),
	)

	// A present but broken file is reported rather than silently skipped.
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := ParseDodger(data, FormatForPath(path))
		if err != nil {
			return DodgerConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := ParseDodger(defaultDodgerYAML, FormatYAML)
	if err != nil {
		return DefaultDodgerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseDodger decodes data over the default config and validates the result.
func ParseDodger(data []byte, format string) (DodgerConfig, error) {
	cfg := DefaultDodgerConfig()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return DodgerConfig{}, fmt.Errorf("toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DodgerConfig{}, fmt.Errorf("yaml: %w", err)
		}
	default:
		return DodgerConfig{}, fmt.Errorf("unsupported config format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return DodgerConfig{}, err
	}
	return cfg, nil
}

// EncodeDodger renders a config in the given format.
func EncodeDodger(cfg DodgerConfig, format string) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// FormatForPath picks the decoder from the file extension. Anything that is
// not .toml is read as YAML.
func FormatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
