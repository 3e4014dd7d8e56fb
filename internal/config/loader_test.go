package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg ZTypeConfig
	if err := yaml.Unmarshal(defaultZTypeYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultZTypeConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultZTypeConfig() %+v", cfg, DefaultZTypeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()

	cfg, source, err := loadZType("", []string{filepath.Join(dir, "missing.yaml")})
	if err != nil {
		t.Fatalf("loadZType() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != DefaultZTypeConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ztype.yaml", "canvas:\n  bottom_threshold: 300\nwords:\n  length: 4\n")

	cfg, source, err := loadZType(path, nil)
	if err != nil {
		t.Fatalf("loadZType() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Canvas.BottomThreshold != 300 || cfg.Words.Length != 4 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Canvas.Width != 800 || cfg.TickRate != 30 {
		t.Errorf("unset keys should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "canvas: [1, 2"), "failed to parse"},
		{"invalid values", writeFile(t, dir, "invalid.yaml", "words:\n  spawn_interval: 0\n"), "spawn_interval"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := loadZType(tc.path, nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadSkipsBrokenCandidates(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.yaml", "tick_rate: -1\n")
	good := writeFile(t, dir, "good.yaml", "tick_rate: 60\n")

	cfg, source, err := loadZType("", []string{broken, good})
	if err != nil {
		t.Fatalf("loadZType() failed: %v", err)
	}
	if source != good {
		t.Errorf("source = %q, expected %q", source, good)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ZTypeConfig)
		valid  bool
	}{
		{"defaults", func(*ZTypeConfig) {}, true},
		{"zero width", func(c *ZTypeConfig) { c.Canvas.Width = 0 }, false},
		{"margin too wide", func(c *ZTypeConfig) { c.Words.SpawnMargin = 800 }, false},
		{"negative initial", func(c *ZTypeConfig) { c.Words.InitialCount = -1 }, false},
		{"no initial words", func(c *ZTypeConfig) { c.Words.InitialCount = 0 }, true},
		{"empty alphabet", func(c *ZTypeConfig) { c.Words.Alphabet = "" }, false},
		{"zero tick rate", func(c *ZTypeConfig) { c.TickRate = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultZTypeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid {
				if err == nil {
					t.Fatal("expected an error")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("error should wrap ErrInvalidConfig: %v", err)
				}
			}
		})
	}
}
