package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "addr: :9999\nmodel_path: /srv/model.json\nmax_body_bytes: 2048\ncors_allowed_origins: [a, b]\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.ModelPath != "/srv/model.json" || cfg.MaxBodyBytes != 2048 || len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"addr":":7070","model_path":"/m.json","log_level":"debug","cors_enabled":true}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.ModelPath != "/m.json" || cfg.LogLevel != "debug" || !cfg.CORSEnabled {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "addr=\":8081\"\nmodel_path=\"/x.toml\"\nshutdown_timeout_seconds=9\nlog_format=\"console\"\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8081" || cfg.ModelPath != "/x.toml" || cfg.ShutdownTimeoutSeconds != 9 || cfg.LogFormat != "console" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
	if _, err := Load("/definitely/not/a/real/file-12345.yaml"); err == nil {
		t.Fatalf("expected error for nonexistent file")
	}
	p = writeTempFile(t, d, "bad.yaml", "addr: :8080\n: broken\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected YAML unmarshal error")
	}
	p = writeTempFile(t, d, "bad.json", `{ "addr": ":8080", "model_path": }`)
	if _, err := Load(p); err == nil {
		t.Fatalf("expected JSON unmarshal error")
	}
	p = writeTempFile(t, d, "bad.toml", "addr=:8080\nmodel_path\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected TOML unmarshal error")
	}
}

func TestResolve_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Addr != DefaultAddr || cfg.ModelPath != DefaultModelPath || cfg.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.RequestLog != "" || cfg.CORSEnabled {
		t.Fatalf("request logging and CORS must be off by default: %+v", cfg)
	}
}

func TestResolve_FileThenEnv(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "addr: :9000\nmodel_path: file.json\nlog_level: warn\n")
	t.Setenv("HYDROCORE_MODEL_PATH", "env.json")
	t.Setenv("HYDROCORE_CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	cfg, err := Resolve(p)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Fatalf("file value lost: %+v", cfg)
	}
	if cfg.ModelPath != "env.json" {
		t.Fatalf("env must override file: %+v", cfg)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != DefaultLogFormat {
		t.Fatalf("unexpected log config: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestResolve_BadEnv(t *testing.T) {
	t.Setenv("HYDROCORE_MAX_BODY_BYTES", "lots")
	if _, err := Resolve(""); err == nil {
		t.Fatalf("expected error for non-numeric HYDROCORE_MAX_BODY_BYTES")
	}
}

func TestResolve_BadCORSFlag(t *testing.T) {
	t.Setenv("HYDROCORE_CORS_ENABLED", "maybe")
	if _, err := Resolve(""); err == nil {
		t.Fatalf("expected error for HYDROCORE_CORS_ENABLED=maybe")
	}
}

func TestLoad_ExampleFile(t *testing.T) {
	cfg, err := Load("../../hydrocore.example.yaml")
	if err != nil {
		t.Fatalf("load example: %v", err)
	}
	want := Defaults()
	if cfg.Addr != want.Addr || cfg.ModelPath != want.ModelPath || cfg.MaxBodyBytes != want.MaxBodyBytes || cfg.RequestLog != "off" {
		t.Fatalf("example drifted from defaults: %+v", cfg)
	}
}

func TestResolve_NonPositiveEnvRejected(t *testing.T) {
	for _, kv := range [][2]string{
		{"HYDROCORE_SHUTDOWN_TIMEOUT_SECONDS", "0"},
		{"HYDROCORE_SHUTDOWN_TIMEOUT_SECONDS", "-3"},
		{"HYDROCORE_MAX_BODY_BYTES", "0"},
	} {
		t.Run(kv[0]+"="+kv[1], func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			if _, err := Resolve(""); err == nil {
				t.Fatalf("expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}

func TestResolve_NonPositiveFileValuesKeepDefaults(t *testing.T) {
	p := writeTempFile(t, t.TempDir(), "cfg.yaml", "shutdown_timeout_seconds: -1\nmax_body_bytes: 0\n")
	cfg, err := Resolve(p)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.ShutdownTimeoutSeconds != DefaultShutdownTimeoutSeconds || cfg.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}
