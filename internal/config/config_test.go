package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultOpensViewer(t *testing.T) {
	d := Default()
	if !d.OpenViewer {
		t.Fatalf("OpenViewer default must be true")
	}
	if d.LookupBaseURL == "" || d.HTTPTimeoutSec <= 0 || d.ChartWidth <= 0 || d.ChartHeight <= 0 {
		t.Fatalf("incomplete defaults: %+v", d)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	// A missing explicit config file is non-fatal; Load must return exactly
	// the built-in defaults.
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *c != *Default() {
		t.Fatalf("loaded config %+v differs from defaults %+v", c, Default())
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	text := "lookup_base_url: http://growthref.local:9000\nopen_viewer: false\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.LookupBaseURL != "http://growthref.local:9000" {
		t.Fatalf("lookup_base_url = %q", c.LookupBaseURL)
	}
	if c.OpenViewer {
		t.Fatalf("open_viewer override ignored")
	}
	// Untouched keys keep their defaults.
	if c.ChartWidth != Default().ChartWidth {
		t.Fatalf("chart_width = %d", c.ChartWidth)
	}
}
