package app

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("life", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *cfg != *NewConfig() {
		t.Fatalf("defaults changed: %+v", cfg)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse("life", []string{"-rule", "B36/S23", "-w", "40", "-boundary", "clamped", "-tps", "5"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Rule != "B36/S23" || cfg.Width != 40 || cfg.Boundary != "clamped" || cfg.TPS != 5 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestParseConfigFileWithFlagOverride(t *testing.T) {
	path := writeConfig(t, `
sim: highlife
width: 30
height: 20
density: 0.25
tps: 12
save_path: glider.lif
`)
	cfg, err := Parse("life", []string{"-config", path, "-h", "25"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sim != "highlife" || cfg.Width != 30 || cfg.Density != 0.25 || cfg.TPS != 12 || cfg.SavePath != "glider.lif" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Height != 25 {
		t.Fatalf("explicit flag should win over the file, height=%d", cfg.Height)
	}
	if cfg.Scale != NewConfig().Scale {
		t.Fatalf("fields missing from the file should keep defaults, scale=%d", cfg.Scale)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("config path = %q", cfg.ConfigPath)
	}
}

func TestParseErrors(t *testing.T) {
	bad := [][]string{
		{"-rule", "B3S23"},
		{"-boundary", "mobius"},
		{"-w", "0"},
		{"-tps", "500"},
		{"-density", "1.5"},
		{"-scale", "0"},
		{"-config", filepath.Join(t.TempDir(), "missing.yaml")},
		{"-config", writeConfig(t, "width: [1, 2")},
	}
	for _, args := range bad {
		if _, err := Parse("life", args); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestSimOptions(t *testing.T) {
	cfg := NewConfig()
	opts := cfg.SimOptions()
	if _, ok := opts["rule"]; ok {
		t.Fatal("an empty rule must not override the preset")
	}
	if opts["w"] != "96" || opts["h"] != "64" || opts["seed"] != "42" || opts["density"] != "0.5" || opts["boundary"] != "toroidal" {
		t.Fatalf("unexpected options: %v", opts)
	}
	cfg.Rule = "B2/S"
	if cfg.SimOptions()["rule"] != "B2/S" {
		t.Fatal("rule should be forwarded")
	}
}
