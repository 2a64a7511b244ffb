package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(cfg.Telemetry.Endpoint, "YOUR_ANALYTICS_ENDPOINT") {
		t.Errorf("default endpoint = %q, want the placeholder template", cfg.Telemetry.Endpoint)
	}
	if cfg.Telemetry.IPLookupURL != "https://api.ipify.org?format=json" {
		t.Errorf("default IP lookup = %q", cfg.Telemetry.IPLookupURL)
	}
	if cfg.Lists.Default != "isee-core" {
		t.Errorf("default list = %q, want %q", cfg.Lists.Default, "isee-core")
	}
	if !cfg.Audio.Enabled {
		t.Error("audio disabled by default")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.File == "" {
		t.Error("default log file path is empty")
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
telemetry:
  endpoint: https://example.com/collect
  referrer: test-suite
lists:
  default: extra
audio:
  enabled: false
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telemetry.Endpoint != "https://example.com/collect" {
		t.Errorf("endpoint = %q", cfg.Telemetry.Endpoint)
	}
	if cfg.Telemetry.Referrer != "test-suite" {
		t.Errorf("referrer = %q", cfg.Telemetry.Referrer)
	}
	if cfg.Lists.Default != "extra" {
		t.Errorf("default list = %q", cfg.Lists.Default)
	}
	if cfg.Audio.Enabled {
		t.Error("audio.enabled = true, want false")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	// Untouched keys keep their defaults.
	if cfg.Telemetry.IPLookupURL == "" {
		t.Error("IP lookup default lost")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of missing explicit file = nil error, want failure")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("VOCABDRILL_LISTS_DEFAULT", "from-env")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Lists.Default != "from-env" {
		t.Errorf("lists.default = %q, want env override", cfg.Lists.Default)
	}
}
