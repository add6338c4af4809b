package execution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency is used when RunBatch gets a limit below one.
const DefaultBatchConcurrency = 4

// RunBatch runs tool of moduleID against every target with at most limit
// requests in flight. Results keep the order of targets. Failed requests
// yield placeholder results like in a Session; the returned error is only
// set when the context is cancelled or a target is blank.
func RunBatch(ctx context.Context, executor Executor, moduleID, tool string, targets []string, limit int, opts ...Option) ([]Result, error) {
	for i, t := range targets {
		if strings.TrimSpace(t) == "" {
			return nil, fmt.Errorf("target %d: %w", i+1, ErrEmptyTarget)
		}
	}
	if limit < 1 {
		limit = DefaultBatchConcurrency
	}

	r := newRunner(executor, opts)
	r.logger.Info("starting batch execution",
		"module", moduleID,
		"tool", tool,
		"targets", len(targets),
		"concurrency", limit,
	)
	start := time.Now()

	results := make([]Result, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, t := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.run(gctx, moduleID, tool, t)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	r.logger.Info("batch execution complete",
		"targets", len(targets),
		"elapsed", time.Since(start),
	)
	return results, nil
}
