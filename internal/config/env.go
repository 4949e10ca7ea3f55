package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/internal/common/fsutil"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "HYDROCORE_"

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Missing files are skipped; variables already set win.
func LoadDotEnv(paths ...string) error {
	var existing []string
	for _, p := range paths {
		if fsutil.PathExists(p) {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with HYDROCORE_* environment variables.
func ApplyEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	str("ADDR", &cfg.Addr)
	str("MODEL_PATH", &cfg.ModelPath)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("LOG_FILE", &cfg.LogFile)
	str("REQUEST_LOG", &cfg.RequestLog)

	ints := []struct {
		key string
		dst *int
	}{
		{"LOG_MAX_SIZE_MB", &cfg.LogMaxSizeMB},
		{"LOG_MAX_BACKUPS", &cfg.LogMaxBackups},
		{"SHUTDOWN_TIMEOUT_SECONDS", &cfg.ShutdownTimeoutSeconds},
	}
	for _, e := range ints {
		if v, ok := os.LookupEnv(EnvPrefix + e.key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, e.key, err)
			}
			if n <= 0 {
				return fmt.Errorf("%s%s: must be positive, got %d", EnvPrefix, e.key, n)
			}
			*e.dst = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "MAX_BODY_BYTES"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sMAX_BODY_BYTES: %w", EnvPrefix, err)
		}
		if n <= 0 {
			return fmt.Errorf("%sMAX_BODY_BYTES: must be positive, got %d", EnvPrefix, n)
		}
		cfg.MaxBodyBytes = n
	}
	if v, ok := os.LookupEnv(EnvPrefix + "CORS_ENABLED"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sCORS_ENABLED: %w", EnvPrefix, err)
		}
		cfg.CORSEnabled = b
	}
	if v, ok := os.LookupEnv(EnvPrefix + "CORS_ALLOWED_ORIGINS"); ok && v != "" {
		cfg.CORSAllowedOrigins = SplitCSV(v)
	}
	return nil
}

// SplitCSV splits a comma separated list, trimming blanks and dropping empty items.
func SplitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
