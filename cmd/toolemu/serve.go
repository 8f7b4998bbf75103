package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/invincible-jha/aumai-toolemu/internal/config"
	"github.com/invincible-jha/aumai-toolemu/internal/logger"
	"github.com/invincible-jha/aumai-toolemu/internal/server"
	"github.com/invincible-jha/aumai-toolemu/pkg/emulator"
)

// runServe starts the emulator HTTP server and blocks until SIGINT/SIGTERM.
func runServe(args []string) int {
	env := config.ServerFromEnv()

	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to the emulator config file (YAML or JSON)")
	host := fs.String("host", env.Host, "host address to bind")
	port := fs.Int("port", env.Port, "port to bind the server to")
	_ = fs.Parse(args)

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "serve: -config is required")
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	emu, err := emulator.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build emulator: %v\n", err)
		return 1
	}

	logger.Init(env.Profile)
	defer logger.Sync()

	names := make([]string, 0, len(cfg.Mocks))
	for _, m := range cfg.Mocks {
		names = append(names, m.ToolName)
	}

	addr := fmt.Sprintf("%s:%d", *host, *port)
	logger.Log.Infow(
		"[toolemu] starting emulator server",
		"addr", addr,
		"mocks", names,
		"defaultLatencyMs", cfg.DefaultLatencyMs,
		"recordCalls", cfg.RecordCalls,
	)

	srv := server.New(addr, emu)

	// Handle SIGINT/SIGTERM for a clean shutdown in local dev / docker.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Log.Info("[toolemu] shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	if err := srv.Run(); err != nil {
		logger.Log.Errorw("[toolemu] server error", "err", err)
		return 1
	}
	return 0
}
