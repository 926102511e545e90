package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.RefreshInterval != time.Second {
		t.Errorf("DefaultConfig().RefreshInterval = %v, want 1s", cfg.RefreshInterval)
	}
	if !cfg.Hour12 {
		t.Error("DefaultConfig().Hour12 = false, want true")
	}
	if cfg.Converter.From != "America/New_York" || cfg.Converter.To != "Europe/London" {
		t.Errorf("DefaultConfig().Converter = %+v, want New York -> London", cfg.Converter)
	}
	if !strings.HasSuffix(cfg.Storage, "worldclock.db") {
		t.Errorf("DefaultConfig().Storage = %q, want a worldclock.db path", cfg.Storage)
	}
	if err := Validate(&cfg); err != nil {
		t.Errorf("DefaultConfig() does not validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	original := &Config{
		Storage:         "redis://localhost:6379/2",
		LogLevel:        "debug",
		RefreshInterval: 500 * time.Millisecond,
		Hour12:          false,
		Color:           false,
		Converter:       ConverterConfig{From: "Asia/Tokyo", To: "Europe/Paris"},
	}

	if err := Save(path, original); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *loaded != *original {
		t.Errorf("Load() = %+v, want %+v", *loaded, *original)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("hour12: false\nrefresh_interval: 2s\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Hour12 {
		t.Error("Load().Hour12 = true, want false from file")
	}
	if cfg.RefreshInterval != 2*time.Second {
		t.Errorf("Load().RefreshInterval = %v, want 2s", cfg.RefreshInterval)
	}
	if cfg.Converter.From != "America/New_York" {
		t.Errorf("Load().Converter.From = %q, want default", cfg.Converter.From)
	}
}

func TestLoadNonexistent(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load() for missing file should return error")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should return error")
	}
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, got, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate() error: %v", err)
	}
	if got != path {
		t.Errorf("LoadOrCreate() path = %q, want %q", got, path)
	}
	if cfg.Converter.To != "Europe/London" {
		t.Errorf("LoadOrCreate() returned non-default config: %+v", cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !strings.Contains(string(data), "# Where the active city list is kept") {
		t.Error("created config is missing the storage guide comment")
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("commented config does not parse: %v", err)
	}
	if *again != *cfg {
		t.Errorf("reloaded config = %+v, want %+v", *again, *cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("WORLDCLOCK_STORAGE", "memory:")
	t.Setenv("WORLDCLOCK_HOUR12", "false")
	t.Setenv("WORLDCLOCK_REFRESH_INTERVAL", "250ms")
	t.Setenv("WORLDCLOCK_CONVERTER_TO", "Asia/Seoul")

	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}

	if cfg.Storage != "memory:" {
		t.Errorf("Storage = %q, want memory:", cfg.Storage)
	}
	if cfg.Hour12 {
		t.Error("Hour12 = true, want false from env")
	}
	if cfg.RefreshInterval != 250*time.Millisecond {
		t.Errorf("RefreshInterval = %v, want 250ms", cfg.RefreshInterval)
	}
	if cfg.Converter.To != "Asia/Seoul" {
		t.Errorf("Converter.To = %q, want Asia/Seoul", cfg.Converter.To)
	}
	if cfg.Converter.From != "America/New_York" {
		t.Errorf("Converter.From = %q, want untouched default", cfg.Converter.From)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("WORLDCLOCK_TEST_DOTENV=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("WORLDCLOCK_TEST_DOTENV") })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error: %v", err)
	}
	if got := os.Getenv("WORLDCLOCK_TEST_DOTENV"); got != "from-file" {
		t.Errorf("WORLDCLOCK_TEST_DOTENV = %q, want from-file", got)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("LoadDotEnv() for a missing file should be a no-op, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown from zone", func(c *Config) { c.Converter.From = "Mars/Base" }, "Converter.From"},
		{"empty to zone", func(c *Config) { c.Converter.To = "" }, "Converter.To"},
		{"interval too short", func(c *Config) { c.RefreshInterval = time.Millisecond }, "RefreshInterval"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LogLevel"},
		{"no storage", func(c *Config) { c.Storage = "" }, "Storage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := Validate(&cfg)
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Validate() error %q does not mention %s", err, tt.field)
			}
		})
	}
}
