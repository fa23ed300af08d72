package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DataDir != "" || cfg.General.Quiet {
		t.Fatalf("defaults = %+v", cfg)
	}
	if Exists() {
		t.Fatal("Exists = true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/flowstate-data"
	cfg.General.Quiet = true

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.DataDir != "/tmp/flowstate-data" || !loaded.General.Quiet {
		t.Fatalf("round trip lost fields: %+v", loaded)
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "flowstate", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[general\ndata_dir ="), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted malformed toml")
	}
}

func TestDataDirResolution(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	if got := DataDir(DefaultConfig()); got != filepath.Join("/xdg/data", "flowstate") {
		t.Fatalf("DataDir = %q", got)
	}

	cfg := DefaultConfig()
	cfg.General.DataDir = "/custom"
	if got := DataDir(cfg); got != "/custom" {
		t.Fatalf("DataDir override = %q", got)
	}
	if got := SnapshotPath(cfg); got != filepath.Join("/custom", "flowstate.db") {
		t.Fatalf("SnapshotPath = %q", got)
	}
}
