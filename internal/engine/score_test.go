package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storeMocks "github.com/souqly/souqly/internal/store/mocks"
	"github.com/souqly/souqly/pkg/insight"
	domain "github.com/souqly/souqly/pkg/types"
)

func TestRescoreUnscored_DrainsBacklog(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)

	products := make([]domain.Product, 3)
	for i := range products {
		products[i] = domain.Product{
			ID:     fmt.Sprintf("p%d", i),
			Price:  10,
			Rating: 4.5,
		}
	}

	ms.EXPECT().ListUnscoredProducts(mock.Anything, rescoreBatchSize).Return(products, nil)
	for i := range products {
		ms.EXPECT().
			UpdateDealScore(mock.Anything, fmt.Sprintf("p%d", i), mock.Anything).
			Return(nil)
	}

	scored, err := RescoreUnscored(context.Background(), ms, insight.DefaultWeights())
	require.NoError(t, err)
	assert.Equal(t, 3, scored)
}

func TestRescoreUnscored_EmptyBacklog(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListUnscoredProducts(mock.Anything, rescoreBatchSize).Return(nil, nil)

	scored, err := RescoreUnscored(context.Background(), ms, insight.DefaultWeights())
	require.NoError(t, err)
	assert.Zero(t, scored)
}

func TestRescoreUnscored_UpdateError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListUnscoredProducts(mock.Anything, rescoreBatchSize).Return(
		[]domain.Product{{ID: "p1"}}, nil,
	)
	ms.EXPECT().
		UpdateDealScore(mock.Anything, "p1", mock.Anything).
		Return(errors.New("db down"))

	scored, err := RescoreUnscored(context.Background(), ms, insight.DefaultWeights())
	require.Error(t, err)
	assert.Zero(t, scored)
	assert.Contains(t, err.Error(), "updating deal score")
}

func TestRescoreUnscored_DeterministicScores(t *testing.T) {
	t.Parallel()

	p := domain.Product{ID: "p1", Price: 50, Rating: 4.0, ReviewCount: 100, InStock: true}

	first := insight.Score(&p, insight.DefaultWeights())
	second := insight.Score(&p, insight.DefaultWeights())
	assert.Equal(t, first.Total, second.Total)
}
