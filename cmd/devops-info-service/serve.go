package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/sayfetik/DevOps-Core-Course/internal/config"
	"github.com/sayfetik/DevOps-Core-Course/internal/httpserver"
	"github.com/sayfetik/DevOps-Core-Course/internal/sysinfo"

	"github.com/spf13/cobra"
)

func runServe(cmd *cobra.Command, args []string) error {
	// Uptime is measured from here, before the listener opens.
	clock := sysinfo.NewClock(nil)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := newLogger(cfg.Debug)
	slog.SetDefault(logger)

	h := httpserver.NewRouter(httpserver.RouterDeps{
		Config: cfg,
		Clock:  clock,
		Sys:    sysinfo.NewCollector(logger),
		Logger: logger,
	})

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}

	logger.Info("Starting application...", "addr", ln.Addr().String(), "debug", cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return httpserver.Serve(ctx, ln, h, logger)
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
