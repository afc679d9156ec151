// ABOUTME: Worker pool runs independent jobs with bounded concurrency
// ABOUTME: Results are stored by input index so output order never depends on completion order

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool bounds how many jobs run at once
type Pool struct {
	size int
}

// NewPool creates a pool running at most size jobs concurrently; size < 1 means 1
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{size: size}
}

// Size returns the concurrency limit
func (p *Pool) Size() int {
	return p.size
}

// Map applies fn to every input and returns results in input order.
// fn must handle its own failures; Map only reports cancellation of ctx,
// in which case jobs not yet started are skipped and their results are zero values.
func Map[T, R any](ctx context.Context, p *Pool, inputs []T, fn func(ctx context.Context, input T) R) ([]R, error) {
	results := make([]R, len(inputs))
	if len(inputs) == 0 {
		return results, ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)

	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = fn(gctx, input)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
