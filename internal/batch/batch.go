package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	sentsplit "github.com/jamesainslie/go-sentsplit"
)

// Job is one document to split.
type Job struct {
	Name   string
	Tokens []sentsplit.Token
}

// Mode selects plain splitting or sentence tag insertion.
type Mode struct {
	XML     bool
	EOSTags []string
}

// Split runs every job on the pool and returns the sentences in job order.
// The first failing job cancels the rest.
func Split(ctx context.Context, pool *Pool, jobs []Job, mode Mode) ([][][]sentsplit.Token, error) {
	results := make([][][]sentsplit.Token, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(pool.Size())

	for i, job := range jobs {
		g.Go(func() error {
			s, err := pool.Acquire(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			defer pool.Release(s)

			var sentences [][]sentsplit.Token
			if mode.XML {
				sentences, err = s.SplitXML(job.Tokens, mode.EOSTags)
			} else {
				sentences, err = s.Split(job.Tokens)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			results[i] = sentences
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
