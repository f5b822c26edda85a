package server

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	trivalent "github.com/trivalent/go-trivalent"
	"github.com/trivalent/go-trivalent/formula"
	"github.com/trivalent/go-trivalent/parse"
	"github.com/trivalent/go-trivalent/sign"
	"github.com/trivalent/go-trivalent/system/provd/api"
	"github.com/trivalent/go-trivalent/tableau"
)

// Session reads JSON-line requests from one connection and answers them
// in order. Each request runs its own engine; sessions share no mutable
// state.
type Session struct {
	ID   string
	conn io.ReadWriteCloser
	cfg  *Config
	log  *slog.Logger

	closeOnce sync.Once
}

// SessionConfig contains configuration for creating a session.
type SessionConfig struct {
	Config *Config
	Log    *slog.Logger
}

// NewSession creates a new session for the given connection.
func NewSession(id string, conn io.ReadWriteCloser, cfg *SessionConfig) *Session {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		ID:   id,
		conn: conn,
		cfg:  cfg.Config,
		log:  log.With("session", id),
	}
}

// Run serves the session until the client disconnects.
func (s *Session) Run() error {
	defer s.Close()
	scanner := bufio.NewScanner(s.conn)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	enc := json.NewEncoder(s.conn)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		req := &api.Request{}
		if err := json.Unmarshal(line, req); err != nil {
			if err := enc.Encode(&api.Response{Error: fmt.Sprintf("%v: %v", api.ErrBadRequest, err)}); err != nil {
				return err
			}
			continue
		}
		resp := s.handle(req)
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Close terminates the session's connection.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.conn.Close()
	})
}

func (s *Session) handle(req *api.Request) *api.Response {
	resp := &api.Response{ID: req.ID, Op: req.Op}
	s.log.Debug("request", "op", req.Op, "id", req.ID)
	switch req.Op {
	case api.OpSolve:
		s.solve(req, resp)
	case api.OpValid:
		s.valid(req, resp)
	case api.OpEntails, api.OpCheck:
		s.check(req, resp)
	case api.OpModels:
		s.models(req, resp)
	default:
		resp.Error = fmt.Sprintf("%v: unknown op %q", api.ErrBadRequest, req.Op)
	}
	return resp
}

func (s *Session) options(req *api.Request) *trivalent.Options {
	opts := &trivalent.Options{Trace: req.Trace}
	if lim := s.cfg.Limits; lim != nil {
		opts.MaxSteps = lim.MaxSteps
		opts.MaxBranches = lim.MaxBranches
	}
	if req.MaxSteps > 0 {
		opts.MaxSteps = req.MaxSteps
	}
	return opts
}

func (s *Session) solve(req *api.Request, resp *api.Response) {
	f, sg, err := s.parseSigned(req)
	if err != nil {
		resp.Error = err.Error()
		return
	}
	res, err := trivalent.Solve(f, sg, s.options(req))
	if err != nil {
		resp.Error = err.Error()
		return
	}
	resp.Satisfiable = &res.Satisfiable
	resp.Unknown = res.Unknown
	resp.Models = wireModels(res.Models)
	resp.Steps = res.Steps
	if res.Trace != nil {
		resp.Trace = res.Trace.String()
	}
}

func (s *Session) valid(req *api.Request, resp *api.Response) {
	f, err := parse.Formula(req.Formula)
	if err != nil {
		resp.Error = err.Error()
		return
	}
	v, err := trivalent.Valid(f)
	if err != nil {
		if errors.Is(err, trivalent.ErrUnknown) {
			resp.Unknown = true
			return
		}
		resp.Error = err.Error()
		return
	}
	resp.Valid = &v
}

func (s *Session) check(req *api.Request, resp *api.Response) {
	inf, err := parse.ParseInference(req.Inference)
	if err != nil {
		resp.Error = err.Error()
		return
	}
	opts := s.options(req)
	opts.FindAll = req.Op == api.OpCheck
	res, err := trivalent.CheckInference(inf.Premises, inf.Conclusion, opts)
	if err != nil {
		resp.Error = err.Error()
		return
	}
	resp.Valid = &res.Valid
	resp.Unknown = res.Unknown
	resp.Models = wireModels(res.Countermodels)
	resp.Steps = res.Steps
	if res.Trace != nil {
		resp.Trace = res.Trace.String()
	}
}

func (s *Session) models(req *api.Request, resp *api.Response) {
	f, sg, err := s.parseSigned(req)
	if err != nil {
		resp.Error = err.Error()
		return
	}
	limit := req.Limit
	if lim := s.cfg.Limits; lim != nil && lim.MaxModels > 0 && (limit <= 0 || limit > lim.MaxModels) {
		limit = lim.MaxModels
	}
	models, err := trivalent.FindModels(f, sg, limit, s.options(req))
	if errors.Is(err, trivalent.ErrUnknown) {
		resp.Unknown = true
	} else if err != nil {
		resp.Error = err.Error()
		return
	}
	sat := len(models) > 0
	resp.Satisfiable = &sat
	resp.Models = wireModels(models)
}

func (s *Session) parseSigned(req *api.Request) (*formula.Node, sign.Sign, error) {
	f, err := parse.Formula(req.Formula)
	if err != nil {
		return nil, sign.T, err
	}
	sg := sign.T
	if req.Sign != "" {
		sg, err = sign.Parse(req.Sign)
		if err != nil {
			return nil, sign.T, err
		}
	}
	return f, sg, nil
}

func wireModels(models []*tableau.Model) []api.Model {
	if len(models) == 0 {
		return nil
	}
	out := make([]api.Model, len(models))
	for i, m := range models {
		w := api.Model{}
		for k, v := range m.Atoms {
			w[k] = v.String()
		}
		out[i] = w
	}
	return out
}
