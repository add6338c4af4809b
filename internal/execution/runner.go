package execution

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/nao1215/osintnexus/internal/api"
	applog "github.com/nao1215/osintnexus/internal/log"
	"github.com/nao1215/osintnexus/internal/model"
	"github.com/nao1215/osintnexus/internal/target"
)

// Executor runs a tool on the backend. *api.Client implements it.
type Executor interface {
	Execute(ctx context.Context, moduleID, tool, target string) (api.ExecuteResponse, error)
}

// Option configures a Session or a batch run.
type Option func(*runner)

// WithLogger sets the logger used to report failed requests.
func WithLogger(logger *slog.Logger) Option {
	return func(r *runner) {
		r.logger = logger
	}
}

// WithRand sets the random source for placeholder results.
func WithRand(src *rand.Rand) Option {
	return func(r *runner) {
		r.rand = src
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *runner) {
		r.now = now
	}
}

// runner performs one request and applies the fallback. It is safe for
// concurrent use.
type runner struct {
	executor Executor
	logger   *slog.Logger
	now      func() time.Time

	mu   sync.Mutex
	rand *rand.Rand
}

func newRunner(executor Executor, opts []Option) *runner {
	r := &runner{
		executor: executor,
		logger:   applog.Discard(),
		now:      time.Now,
		rand:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // placeholder values
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *runner) run(ctx context.Context, moduleID, tool, tgt string) Result {
	if r.executor == nil {
		return r.fabricate(moduleID, tool, tgt)
	}

	resp, err := r.executor.Execute(ctx, moduleID, tool, tgt)
	if err != nil {
		r.logger.Warn("tool execution failed, showing placeholder result",
			"module", moduleID,
			"tool", tool,
			"error", err,
		)
		return r.fabricate(moduleID, tool, tgt)
	}

	status := resp.Status
	if status == "" {
		status = string(model.StatusCompleted)
	}
	kind := target.Kind(resp.TargetType)
	if kind == "" {
		kind = target.Classify(tgt)
	}
	return Result{
		Module:     moduleID,
		Tool:       tool,
		Status:     status,
		Target:     tgt,
		TargetType: kind,
		Findings:   Summarize(resp.Results),
		Details:    resp.Results,
		ExecutedAt: r.now(),
	}
}

func (r *runner) fabricate(moduleID, tool, tgt string) Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Fabricate(moduleID, tool, tgt, r.rand, r.now())
}
