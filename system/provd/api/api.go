// Package api defines the provd wire protocol: newline-delimited JSON
// requests and responses over a TCP session.
package api

import "errors"

var ErrBadRequest = errors.New("provd: bad request")

// Operations.
const (
	OpSolve   = "solve"
	OpValid   = "valid"
	OpEntails = "entails"
	OpCheck   = "check"
	OpModels  = "models"
)

// Request is one prover query. Formula/Sign serve solve, valid and
// models; Inference ("p1, p2 |- c") serves entails and check. Limits of
// zero take the server's configured ceilings.
type Request struct {
	ID        int64  `json:"id"`
	Op        string `json:"op"`
	Formula   string `json:"formula,omitempty"`
	Sign      string `json:"sign,omitempty"`
	Inference string `json:"inference,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Trace     bool   `json:"trace,omitempty"`
	MaxSteps  int    `json:"maxSteps,omitempty"`
}

// Model maps atom keys to "true", "false" or "undefined".
type Model map[string]string

// Response answers the request with the matching ID. Unknown marks a
// search cut off by a resource ceiling; Error carries construction and
// syntax errors, reported before any search ran.
type Response struct {
	ID          int64   `json:"id"`
	Op          string  `json:"op"`
	Satisfiable *bool   `json:"satisfiable,omitempty"`
	Valid       *bool   `json:"valid,omitempty"`
	Unknown     bool    `json:"unknown,omitempty"`
	Models      []Model `json:"models,omitempty"`
	Trace       string  `json:"trace,omitempty"`
	Steps       int     `json:"steps,omitempty"`
	Error       string  `json:"error,omitempty"`
}
