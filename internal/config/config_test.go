package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	arberr "github.com/arbor-ui/arbor/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Bench.Items != 1000 {
		t.Errorf("Bench.Items = %d, want 1000", cfg.Bench.Items)
	}
	if cfg.Output.Pretty {
		t.Error("Output.Pretty should default to false")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := writeConfig(t, `
debug = true

[output]
pretty = true
indent = "    "

[log]
level = "debug"

[metrics]
addr = ":9100"

[bench]
items = 50
iterations = 10
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug {
		t.Error("Debug not set")
	}
	if !cfg.Output.Pretty || cfg.Output.Indent != "    " {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Metrics.Addr != ":9100" {
		t.Errorf("Metrics.Addr = %q", cfg.Metrics.Addr)
	}
	if cfg.Bench.Items != 50 || cfg.Bench.Iterations != 10 {
		t.Errorf("Bench = %+v", cfg.Bench)
	}
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	dir := writeConfig(t, "[bench]\nitems = 5\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Bench.Items != 5 {
		t.Errorf("Bench.Items = %d, want 5", cfg.Bench.Items)
	}
	if cfg.Bench.Iterations != 100 {
		t.Errorf("Bench.Iterations = %d, want default 100", cfg.Bench.Iterations)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want default", cfg.Log.Level)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	dir := writeConfig(t, "not valid {{{")

	_, err := Load(dir)
	assertConfigError(t, err)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	dir := writeConfig(t, "[log]\nlevel = \"loud\"\n")

	_, err := Load(dir)
	assertConfigError(t, err)
}

func TestLoadRejectsBadBenchValues(t *testing.T) {
	dir := writeConfig(t, "[bench]\nitems = 0\n")

	_, err := Load(dir)
	assertConfigError(t, err)
}

func assertConfigError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var ae *arberr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("error %v is not an arbor error", err)
	}
	if ae.Code != "A005" {
		t.Errorf("code = %s, want A005", ae.Code)
	}
}
