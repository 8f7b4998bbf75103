// Package server exposes an Emulator over HTTP. The routes mirror the
// emulator façade one-to-one: invoke a tool, list recorded calls, reset,
// and a liveness probe.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/invincible-jha/aumai-toolemu/internal/logger"
	"github.com/invincible-jha/aumai-toolemu/pkg/emulator"
)

// Server wraps an http.Server serving the emulator API.
//
// It is intentionally small because this project is a test tool, not a
// production service framework.
type Server struct {
	addr       string
	httpServer *http.Server
}

// New creates a server for the emulator at the given address.
// Example addr: "127.0.0.1:9000".
func New(addr string, emu *emulator.Emulator) *Server {
	return &Server{
		addr: addr,
		httpServer: &http.Server{
			Addr:    addr,
			Handler: NewHandler(emu),
		},
	}
}

// Run starts listening on the configured address and blocks until the
// server stops or fails.
func (s *Server) Run() error {
	logger.Log.Infow("[server] starting", "addr", s.addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Errorw("[server] stopped with error", "err", err)
		return err
	}
	logger.Log.Info("[server] stopped gracefully")
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Log.Infow("[server] graceful stop", "addr", s.addr)
	return s.httpServer.Shutdown(ctx)
}
