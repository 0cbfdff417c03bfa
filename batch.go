package entitymatch

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/veridoc/entitymatch/policy"
)

// defaultConcurrency is the number of worker goroutines EvaluateBatch
// uses when none is configured. Pair evaluation is CPU-bound and
// cheap, so a small pool is enough.
const defaultConcurrency = 4

// Pair is one candidate record pair submitted for batch evaluation.
type Pair struct {
	A Record `json:"a"`
	B Record `json:"b"`
}

// Evaluation is the verdict for one pair in a batch. The ID correlates
// a suggest-tier verdict with the review UI that confirms or rejects
// the grouping.
type Evaluation struct {
	// ID is a unique identifier for this evaluation.
	ID string `json:"id"`

	// A and B are the records that were compared.
	A Record `json:"a"`
	B Record `json:"b"`

	// Result is the combined match verdict.
	Result policy.MatchResult `json:"result"`
}

// EvaluateBatch evaluates every pair concurrently and returns the
// verdicts in input order. Pairs are independent, so the only
// coordination is the worker pool itself. Returns ctx.Err() if the
// context is cancelled before all pairs are evaluated; verdicts
// computed up to that point are discarded.
func (m *Matcher) EvaluateBatch(ctx context.Context, pairs []Pair) ([]Evaluation, error) {
	if m.tracer != nil {
		var span trace.Span
		ctx, span = m.tracer.Start(ctx, "entitymatch.batch")
		span.SetAttributes(attribute.Int("batch.pairs", len(pairs)))
		defer span.End()
	}

	if len(pairs) == 0 {
		return nil, nil
	}

	evaluations := make([]Evaluation, len(pairs))
	jobs := make(chan int)

	workers := m.concurrency
	if workers > len(pairs) {
		workers = len(pairs)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				evaluations[i] = Evaluation{
					ID:     uuid.NewString(),
					A:      pairs[i].A,
					B:      pairs[i].B,
					Result: m.EvaluatePair(ctx, pairs[i].A, pairs[i].B),
				}
			}
		}()
	}

	var cancelled error
feed:
	for i := range pairs {
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}

	if m.logger != nil {
		var grouped, review int
		for _, e := range evaluations {
			if policy.ShouldGroup(e.Result) {
				grouped++
			}
			if policy.NeedsReview(e.Result) {
				review++
			}
		}
		m.logger.InfoContext(ctx, "batch evaluation complete",
			"pairs", len(pairs),
			"grouped", grouped,
			"needs_review", review,
		)
	}

	return evaluations, nil
}
