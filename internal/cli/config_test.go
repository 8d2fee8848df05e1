package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/screenruler/pkg/cache"
	"github.com/matzehuels/screenruler/pkg/errors"
)

func TestConfigDirStructure(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}

	expected := filepath.Join(home, ".config", appName)
	if dir != expected {
		t.Errorf("configDir() = %q, want %q", dir, expected)
	}
}

func TestConfigDirXDG(t *testing.T) {
	customConfig := "/tmp/custom-config"
	t.Setenv("XDG_CONFIG_HOME", customConfig)

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}

	expected := filepath.Join(customConfig, appName)
	if dir != expected {
		t.Errorf("configDir() with XDG_CONFIG_HOME = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := "/tmp/custom-cache"
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestNewCacheDisabled(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", home)

	c, err := newCache(true)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if _, ok := c.(cache.NullCache); !ok {
		t.Errorf("newCache(true) = %T, want cache.NullCache", c)
	}
	if _, err := os.Stat(filepath.Join(home, appName)); !os.IsNotExist(err) {
		t.Error("disabled cache should not create its directory")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[device]
dpr = 2
width = 1440
height = 900

[render]
formats = ["svg", "pdf"]
output = "out/ruler"
fragment = "ppi=220"
`)

	cfg, used, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if used != path {
		t.Errorf("used = %q, want %q", used, path)
	}
	if cfg.Device != (deviceConfig{DPR: 2, Width: 1440, Height: 900}) {
		t.Errorf("device = %+v", cfg.Device)
	}
	if len(cfg.Render.Formats) != 2 || cfg.Render.Formats[1] != "pdf" {
		t.Errorf("formats = %v", cfg.Render.Formats)
	}
	if cfg.Render.Output != "out/ruler" || cfg.Render.Fragment != "ppi=220" {
		t.Errorf("render = %+v", cfg.Render)
	}
}

func TestLoadConfigDefaultLocationMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, used, err := loadConfig("")
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if used != "" || cfg.Device.DPR != 0 {
		t.Errorf("expected zero config, got %+v from %q", cfg, used)
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[device]\ndpr = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, used, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Device.DPR != 3 || used == "" {
		t.Errorf("cfg = %+v, used = %q", cfg, used)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"explicit missing", filepath.Join(t.TempDir(), "nope.toml"), errors.ErrCodeIO},
		{"syntax", writeConfig(t, "[device\n"), errors.ErrCodeInvalidInput},
		{"unknown key", writeConfig(t, "[device]\nppi = 3\n"), errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := loadConfig(tt.path)
			if !errors.Is(err, tt.code) {
				t.Errorf("loadConfig() error = %v, want code %s", err, tt.code)
			}
		})
	}
}
