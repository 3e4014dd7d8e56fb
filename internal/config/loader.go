package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in configuration in load results.
const SourceEmbedded = "embedded"

// LoadZType loads ZType configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/ztype.yaml -> ./configs/ztype.yaml -> embedded default.
// Files only need to set the keys they change; the rest keeps default values.
func LoadZType(customPath string) (ZTypeConfig, string, error) {
	var candidates []string
	if userCfgPath := userConfigPath("ztype.yaml"); userCfgPath != "" {
		candidates = append(candidates, userCfgPath)
	}
	candidates = append(candidates, filepath.Join("configs", "ztype.yaml"))

	return loadZType(customPath, candidates)
}

func loadZType(customPath string, candidates []string) (ZTypeConfig, string, error) {
	// A path given explicitly must work; errors are reported.
	if customPath != "" {
		cfg, err := readZType(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Search paths are best effort; broken files are skipped.
	for _, path := range candidates {
		if cfg, err := readZType(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := DefaultZTypeConfig()
	if err := yaml.Unmarshal(defaultZTypeYAML, &cfg); err != nil {
		return DefaultZTypeConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// readZType reads a YAML file over the defaults and validates the result.
func readZType(path string) (ZTypeConfig, error) {
	cfg := DefaultZTypeConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
