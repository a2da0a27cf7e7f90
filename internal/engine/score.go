package engine

import (
	"context"
	"fmt"

	"github.com/souqly/souqly/internal/metrics"
	"github.com/souqly/souqly/internal/store"
	"github.com/souqly/souqly/pkg/insight"
)

const rescoreBatchSize = 500

// RescoreUnscored computes deal scores for products that have none, in
// batches, and returns the number of products scored.
func RescoreUnscored(ctx context.Context, s store.Store, w insight.Weights) (int, error) {
	var scored int

	for {
		if err := ctx.Err(); err != nil {
			return scored, err
		}

		products, err := s.ListUnscoredProducts(ctx, rescoreBatchSize)
		if err != nil {
			return scored, fmt.Errorf("listing unscored products: %w", err)
		}
		if len(products) == 0 {
			return scored, nil
		}

		for i := range products {
			breakdown := insight.Score(&products[i], w)
			metrics.ScoringDistribution.Observe(float64(breakdown.Total))

			if err := s.UpdateDealScore(ctx, products[i].ID, breakdown.Total); err != nil {
				return scored, fmt.Errorf(
					"updating deal score for %s: %w", products[i].ID, err,
				)
			}
			scored++
		}

		// A short batch means the backlog is drained.
		if len(products) < rescoreBatchSize {
			return scored, nil
		}
	}
}
