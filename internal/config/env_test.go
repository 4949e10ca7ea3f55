package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSplitCSV(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"a,,c", []string{"a", "c"}},
		{"", nil},
	}
	for _, c := range cases {
		got := SplitCSV(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
			}
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, ".env")
	if err := os.WriteFile(p, []byte("HYDROCORE_ADDR=:7777\nHYDROCORE_LOG_LEVEL=debug\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	// already-set variables are not overridden by the file
	t.Setenv("HYDROCORE_LOG_LEVEL", "error")
	t.Setenv("HYDROCORE_ADDR", "")
	os.Unsetenv("HYDROCORE_ADDR")

	if err := LoadDotEnv(filepath.Join(d, "missing.env"), p); err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := Defaults()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Addr != ":7777" {
		t.Fatalf("expected addr from .env, got %q", cfg.Addr)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("expected pre-set env to win, got %q", cfg.LogLevel)
	}
}

func TestLoadDotEnv_NoFiles(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("missing files must be skipped: %v", err)
	}
}
