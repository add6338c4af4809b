package execution

import (
	"context"
	"fmt"
	"strings"

	"github.com/nao1215/osintnexus/internal/catalog"
)

// Request identifies one submitted run. It is handed from Begin to Run and
// back to Complete.
type Request struct {
	ctx        context.Context
	generation uint64

	Module string
	Tool   string
	Target string
}

// Session is the state of one tool modal. Its methods other than Run must
// be called from a single goroutine; Run may be called from any goroutine.
type Session struct {
	runner *runner

	open    bool
	module  string
	tool    string
	target  string
	loading bool
	result  *Result

	// generation is bumped on Close and Reset so that late responses of a
	// previous run are dropped.
	generation uint64
	cancel     context.CancelFunc
}

// NewSession creates a closed session. executor may be nil, in which case
// every run produces a placeholder result.
func NewSession(executor Executor, opts ...Option) *Session {
	return &Session{runner: newRunner(executor, opts)}
}

// Open selects a tool of a catalog module. Any previous state is cleared.
func (s *Session) Open(moduleID, tool string) error {
	m, ok := catalog.Lookup(moduleID)
	if !ok {
		return fmt.Errorf("%w: unknown module %q", ErrNoTool, moduleID)
	}
	if _, ok := m.Tool(tool); !ok {
		return fmt.Errorf("%w: %q is not a %s tool", ErrNoTool, tool, m.ShortName())
	}
	s.Close()
	s.open = true
	s.module = moduleID
	s.tool = tool
	return nil
}

// SetTarget updates the target input. It is ignored when the session is
// closed.
func (s *Session) SetTarget(target string) {
	if s.open {
		s.target = target
	}
}

// IsOpen reports whether a tool is selected.
func (s *Session) IsOpen() bool { return s.open }

// Module returns the selected module id.
func (s *Session) Module() string { return s.module }

// Tool returns the selected tool name.
func (s *Session) Tool() string { return s.tool }

// Target returns the current target input.
func (s *Session) Target() string { return s.target }

// Loading reports whether a request is in flight.
func (s *Session) Loading() bool { return s.loading }

// Result returns the result of the last completed run.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Begin starts a run and returns the request to pass to Run. A blank target
// returns ErrEmptyTarget and changes nothing.
func (s *Session) Begin(ctx context.Context) (Request, error) {
	if !s.open {
		return Request{}, ErrNoTool
	}
	if s.loading {
		return Request{}, ErrBusy
	}
	if strings.TrimSpace(s.target) == "" {
		return Request{}, ErrEmptyTarget
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.loading = true
	s.result = nil
	return Request{
		ctx:        ctx,
		generation: s.generation,
		Module:     s.module,
		Tool:       s.tool,
		Target:     s.target,
	}, nil
}

// Run performs the request. It blocks until the backend answers, the
// request fails or the session cancels it, and always returns a result.
func (s *Session) Run(req Request) Result {
	return s.runner.run(req.ctx, req.Module, req.Tool, req.Target)
}

// Complete stores res as the displayed result. It returns false and drops
// res when the session was closed or reset after req was issued.
func (s *Session) Complete(req Request, res Result) bool {
	if req.generation != s.generation || !s.loading {
		return false
	}
	s.loading = false
	s.result = &res
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return true
}

// Submit runs the current target synchronously.
func (s *Session) Submit(ctx context.Context) (Result, error) {
	req, err := s.Begin(ctx)
	if err != nil {
		return Result{}, err
	}
	res := s.Run(req)
	s.Complete(req, res)
	return res, nil
}

// Reset starts over with the same tool: the result and the target input are
// cleared and a running request is abandoned.
func (s *Session) Reset() {
	s.abandon()
	s.target = ""
	s.result = nil
}

// Close clears all state, whether the last run succeeded, failed or is
// still in flight.
func (s *Session) Close() {
	s.abandon()
	s.open = false
	s.module = ""
	s.tool = ""
	s.target = ""
	s.result = nil
}

func (s *Session) abandon() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.loading = false
	s.generation++
}
