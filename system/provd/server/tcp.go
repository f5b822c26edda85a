package server

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"
)

// TCPListener manages TCP connections for the session protocol.
type TCPListener struct {
	listener net.Listener
	server   *Server

	sessionsMu sync.RWMutex
	sessions   map[string]*Session
	sessionSeq atomic.Int64

	wg     sync.WaitGroup
	closed atomic.Bool
}

// NewTCPListener creates a new TCP listener.
func NewTCPListener(addr string, server *Server) (*TCPListener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return &TCPListener{
		listener: listener,
		server:   server,
		sessions: map[string]*Session{},
	}, nil
}

// Addr returns the listener's network address.
func (l *TCPListener) Addr() net.Addr {
	return l.listener.Addr()
}

// Serve accepts connections and creates sessions. Blocks until Close is
// called or an error occurs.
func (l *TCPListener) Serve() error {
	l.server.Spec.Log.Info("provd listener started", "addr", l.listener.Addr().String())

	for {
		conn, err := l.listener.Accept()
		if err != nil {
			if l.closed.Load() {
				return nil
			}
			l.server.Spec.Log.Error("accept error", "error", err)
			continue
		}
		l.wg.Add(1)
		go l.handleConnection(conn)
	}
}

func (l *TCPListener) handleConnection(conn net.Conn) {
	defer l.wg.Done()

	seq := l.sessionSeq.Add(1)
	sessionID := fmt.Sprintf("tcp-%d", seq)
	l.server.Spec.Log.Debug("new connection", "session", sessionID, "remote", conn.RemoteAddr().String())

	session := NewSession(sessionID, conn, &SessionConfig{
		Config: l.server.Spec.Config,
		Log:    l.server.Spec.Log,
	})

	l.sessionsMu.Lock()
	l.sessions[sessionID] = session
	l.sessionsMu.Unlock()

	if err := session.Run(); err != nil {
		l.server.Spec.Log.Error("session error", "session", sessionID, "error", err)
	}

	l.sessionsMu.Lock()
	delete(l.sessions, sessionID)
	l.sessionsMu.Unlock()

	l.server.Spec.Log.Debug("session ended", "session", sessionID)
}

// SessionCount returns the number of live sessions.
func (l *TCPListener) SessionCount() int {
	l.sessionsMu.RLock()
	defer l.sessionsMu.RUnlock()
	return len(l.sessions)
}

// Close shuts down the listener and all sessions.
func (l *TCPListener) Close() error {
	if l.closed.Swap(true) {
		return nil
	}
	err := l.listener.Close()

	l.sessionsMu.RLock()
	for _, session := range l.sessions {
		session.Close()
	}
	l.sessionsMu.RUnlock()

	l.wg.Wait()
	return err
}
