// Package fanout runs independent per-item work on a bounded number of
// goroutines with per-task error isolation.
package fanout

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is used when a caller passes a non-positive limit.
const DefaultLimit = 8

// Result is the outcome of one task. Exactly one of Value or Err is meaningful.
type Result[R any] struct {
	Value R
	Err   error
}

// Map calls fn for every item using at most limit concurrent goroutines and
// returns the results in input order. A failing or panicking task is recorded
// in its own Result and never stops the remaining tasks. The returned error is
// non-nil only when ctx is done before all tasks were started.
func Map[T, R any](ctx context.Context, limit int, items []T, fn func(ctx context.Context, item T) (R, error)) ([]Result[R], error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]Result[R], len(items))
	var g errgroup.Group
	g.SetLimit(limit)

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			_ = g.Wait()
			return nil, err
		}
		i, item := i, item
		g.Go(func() error {
			results[i] = run(ctx, item, fn)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func run[T, R any](ctx context.Context, item T, fn func(ctx context.Context, item T) (R, error)) (res Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("Fan-out task panicked", "panic", p)
			res = Result[R]{Err: fmt.Errorf("task panicked: %v", p)}
		}
	}()

	v, err := fn(ctx, item)
	if err != nil {
		return Result[R]{Err: err}
	}
	return Result[R]{Value: v}
}
