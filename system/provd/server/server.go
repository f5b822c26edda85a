// Package server implements the provd prover daemon: a TCP server
// answering solve/valid/entails/check/models queries over the
// newline-delimited JSON protocol in system/provd/api.
package server

import (
	"log/slog"
	"os"
)

// Spec holds the runtime specification for the server. Config contains
// the serializable settings loaded from a file.
type Spec struct {
	Config *Config
	Log    *slog.Logger
}

// Server answers prover queries for many concurrent sessions. Queries
// share nothing mutable, so sessions run fully independently.
type Server struct {
	Spec Spec

	tcpListener *TCPListener
}

// New creates a new Server instance.
func New(spec *Spec) *Server {
	if spec.Log == nil {
		spec.Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slogLevel(),
		}))
	}
	if spec.Config == nil {
		spec.Config = DefaultConfig()
	}
	return &Server{Spec: *spec}
}

func slogLevel() slog.Level {
	if os.Getenv("DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// StartTCP starts listening on addr; empty addr takes the configured
// address.
func (s *Server) StartTCP(addr string) error {
	if addr == "" {
		addr = s.Spec.Config.Addr
	}
	l, err := NewTCPListener(addr, s)
	if err != nil {
		return err
	}
	s.tcpListener = l
	go l.Serve()
	return nil
}

// TCPAddr returns the bound listen address, usable when the configured
// port was 0.
func (s *Server) TCPAddr() string {
	if s.tcpListener == nil {
		return ""
	}
	return s.tcpListener.Addr().String()
}

// StopTCP shuts down the listener and all sessions.
func (s *Server) StopTCP() error {
	if s.tcpListener == nil {
		return nil
	}
	return s.tcpListener.Close()
}
