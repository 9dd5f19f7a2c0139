package scoring

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

const defaultBatchLimit = 8

// BatchItem identifica a un sujeto dentro de un batch.
type BatchItem[T any] struct {
	ID      string
	Subject T
}

type BatchResult[R any] struct {
	ID     string `json:"id"`
	Result R      `json:"result"`
}

type BatchFailure struct {
	ID  string `json:"id"`
	Err string `json:"error"`
}

// BatchReport conserva el orden de entrada en Results y Failures.
type BatchReport[R any] struct {
	Results  []BatchResult[R] `json:"results"`
	Failures []BatchFailure   `json:"failures"`
}

// RunBatch puntua cada sujeto de forma independiente. Un sujeto que falla se reporta y el
// resto continua; solo la cancelacion del contexto corta el batch.
func RunBatch[T, R any](ctx context.Context, items []BatchItem[T], limit int, fn func(context.Context, T) (R, error)) (BatchReport[R], error) {
	if limit <= 0 {
		limit = defaultBatchLimit
	}

	type outcome struct {
		res R
		err error
		ok  bool
	}
	outcomes := make([]outcome, len(items))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var mu sync.Mutex
	for i, item := range items {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := fn(gCtx, item.Subject)
			mu.Lock()
			outcomes[i] = outcome{res: res, err: err, ok: true}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchReport[R]{}, err
	}

	report := BatchReport[R]{
		Results:  make([]BatchResult[R], 0, len(items)),
		Failures: []BatchFailure{},
	}
	for i, o := range outcomes {
		if !o.ok {
			continue
		}
		if o.err != nil {
			report.Failures = append(report.Failures, BatchFailure{ID: items[i].ID, Err: o.err.Error()})
			continue
		}
		report.Results = append(report.Results, BatchResult[R]{ID: items[i].ID, Result: o.res})
	}
	return report, nil
}
