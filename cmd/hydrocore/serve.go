package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/internal/config"
	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/internal/httpapi"
	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/internal/model"
)

type serveOptions struct {
	configPath string
	envFiles   []string
	addr       string
	modelPath  string
	logLevel   string
	logFormat  string
	requestLog string
}

func bindServeFlags(cmd *cobra.Command, o *serveOptions) {
	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "Config file (.yaml, .json, .toml); defaults to HYDROCORE_CONFIG")
	f.StringSliceVar(&o.envFiles, "env-file", []string{".env"}, "dotenv files to load before reading HYDROCORE_* variables")
	f.StringVar(&o.addr, "addr", "", "HTTP listen address (default "+config.DefaultAddr+")")
	f.StringVar(&o.modelPath, "model", "", "Path to the model artifact (default "+config.DefaultModelPath+")")
	f.StringVar(&o.logLevel, "log-level", "", "Process log level: debug|info|warn|error")
	f.StringVar(&o.logFormat, "log-format", "", "Log format: json|console")
	f.StringVar(&o.requestLog, "request-log", "", "Per-request log level: off|error|info|debug (default off)")
}

// resolve merges defaults, config file, environment and flags, in increasing precedence.
func (o *serveOptions) resolve() (config.Config, error) {
	if err := config.LoadDotEnv(o.envFiles...); err != nil {
		return config.Config{}, err
	}
	path := o.configPath
	if path == "" {
		path = os.Getenv(config.EnvPrefix + "CONFIG")
	}
	cfg, err := config.Resolve(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	for _, kv := range []struct{ flag, dst *string }{
		{&o.addr, &cfg.Addr},
		{&o.modelPath, &cfg.ModelPath},
		{&o.logLevel, &cfg.LogLevel},
		{&o.logFormat, &cfg.LogFormat},
		{&o.requestLog, &cfg.RequestLog},
	} {
		if *kv.flag != "" {
			*kv.dst = *kv.flag
		}
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, o *serveOptions) error {
	cfg, err := o.resolve()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)
	log.Logger = logger

	// The model is loaded before the listener opens: a missing or corrupt
	// artifact means the process never starts serving.
	h, err := model.Load(cfg.ModelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	info := h.Info()
	logger.Info().Str("model", info.Name).Str("kind", info.Kind).Str("path", info.Path).
		Str("sha256", info.SHA256).Msg("model loaded")

	httpapi.SetLogger(logger)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins)
	if cfg.RequestLog != "" {
		httpapi.SetRequestLogLevel(cfg.RequestLog)
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	srv := &http.Server{Handler: httpapi.NewMux(h)}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	logger.Info().Str("addr", ln.Addr().String()).Msg("hydrocore listening")
	return serveUntil(ctx, srv, ln, time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second, logger)
}

// serveUntil serves on ln until ctx is done, then shuts srv down gracefully.
func serveUntil(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration, logger zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}
	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
