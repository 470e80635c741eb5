package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"codeberg.org/awibi/medtech-api/internal/config"
	"github.com/gin-gonic/gin"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// creates and configures a new server instance
func NewServer(cfg *config.Config) *Server {
	router := gin.New()

	// unknown paths, trailing-slash variants included, fall through to the default 404
	router.RedirectTrailingSlash = false

	server := &Server{
		config: cfg,
		router: router,
		httpServer: &http.Server{
			Handler:      router,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
	}

	RegisterRoutes(router, server)

	return server
}

// binds the configured address; the listener is ready to accept once this returns
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.config.Addr(), err)
	}

	return ln, nil
}

// binds the listener and announces the bound port on startup
func (s *Server) Start(startup *slog.Logger) (net.Listener, error) {
	ln, err := s.Listen()
	if err != nil {
		return nil, err
	}

	startup.Info("server listening", "port", boundPort(ln))

	return ln, nil
}

// serves requests on ln until Shutdown is called
func (s *Server) Serve(ln net.Listener) error {
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// stops accepting connections and waits for in-flight requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// returns the port a listener is bound to
func boundPort(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}

	return 0
}
