package executor

import (
	"context"
	"errors"
)

// ErrNoBackend is returned by LoadGraph when no knowledge-graph backend is
// wired in. The agent loop never calls LoadGraph; handling this error is the
// embedding application's job.
var ErrNoBackend = errors.New("knowledge graph backend not wired")

// ProgramResult carries the outcome of one program execution. Malformed
// programs are reported through Err rather than a Go error so the agent
// loop's error handling stays uniform: ExecuteProgram is total and never
// fails out-of-band.
type ProgramResult struct {
	Output string `json:"output,omitempty"`
	Err    string `json:"error,omitempty"`
}

// Executor is the sole integration point to a knowledge-graph backend.
// Implementations parse program text into a sequence of graph operations
// and run them in order; the query and program languages are entirely
// backend-defined.
type Executor interface {
	LoadGraph(ctx context.Context, source string) error
	Query(ctx context.Context, query string) ([]map[string]any, error)
	ExecuteProgram(ctx context.Context, program string) ProgramResult
}

// Unimplemented is the stub executor used until a real backend is wired.
// It fails explicitly rather than silently: LoadGraph always errors, and
// the empty results of Query and ExecuteProgram are placeholders, not
// genuine no-match results.
type Unimplemented struct{}

func (Unimplemented) LoadGraph(ctx context.Context, source string) error {
	return ErrNoBackend
}

func (Unimplemented) Query(ctx context.Context, query string) ([]map[string]any, error) {
	return []map[string]any{}, nil
}

func (Unimplemented) ExecuteProgram(ctx context.Context, program string) ProgramResult {
	return ProgramResult{}
}
