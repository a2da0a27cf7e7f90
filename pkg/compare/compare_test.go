package compare

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/souqly/souqly/pkg/types"
)

func product(id string, price, rating float64, dealScore int) domain.Product {
	p := domain.Product{
		ID:     id,
		Price:  price,
		Rating: rating,
	}
	if dealScore >= 0 {
		p.DealScore = &dealScore
	}
	return p
}

func TestSet_AddRespectsCapacity(t *testing.T) {
	t.Parallel()

	s := New()
	for i := range MaxMembers {
		require.True(t, s.Add(product(fmt.Sprintf("p%d", i), 10, 4, 50)))
	}

	assert.False(t, s.Add(product("extra", 5, 5, 90)), "add beyond capacity must fail")
	assert.Equal(t, MaxMembers, s.Len())
	assert.False(t, s.Contains("extra"))
}

func TestSet_AddRejectsDuplicates(t *testing.T) {
	t.Parallel()

	s := New()
	require.True(t, s.Add(product("a", 100, 4.0, 70)))

	assert.False(t, s.Add(product("a", 50, 5.0, 99)), "duplicate ID must be rejected")
	assert.Equal(t, 1, s.Len())

	// Membership unchanged: the original price survived.
	stats := s.Stats()
	require.NotNil(t, stats.LowestPrice)
	assert.InEpsilon(t, 100.0, *stats.LowestPrice, 1e-9)
}

func TestSet_RemoveAndClear(t *testing.T) {
	t.Parallel()

	s := New()
	require.True(t, s.Add(product("a", 100, 4.0, 70)))
	require.True(t, s.Add(product("b", 80, 4.8, 90)))

	s.Remove("missing") // no-op
	assert.Equal(t, 2, s.Len())

	s.Remove("a")
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Contains("a"))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Stats().LowestPrice)
}

func TestSet_StatsPicksExtremes(t *testing.T) {
	t.Parallel()

	s := New()
	require.True(t, s.Add(product("a", 100, 4.0, 70)))
	require.True(t, s.Add(product("b", 80, 4.8, 90)))

	stats := s.Stats()
	require.NotNil(t, stats.LowestPrice)
	assert.InEpsilon(t, 80.0, *stats.LowestPrice, 1e-9)
	assert.Equal(t, "b", stats.LowestPriceID)

	require.NotNil(t, stats.HighestRating)
	assert.InEpsilon(t, 4.8, *stats.HighestRating, 1e-9)
	assert.Equal(t, "b", stats.HighestRatingID)

	require.NotNil(t, stats.BestDealScore)
	assert.Equal(t, 90, *stats.BestDealScore)
	assert.Equal(t, "b", stats.BestDealScoreID)
}

func TestSet_StatsIgnoresAbsentAttributes(t *testing.T) {
	t.Parallel()

	s := New()
	// No price, no rating, no deal score.
	require.True(t, s.Add(product("bare", 0, 0, -1)))
	require.True(t, s.Add(product("full", 25, 3.5, 40)))

	stats := s.Stats()
	require.NotNil(t, stats.LowestPrice)
	assert.Equal(t, "full", stats.LowestPriceID, "zero price is treated as absent for stats")
	assert.Equal(t, "full", stats.HighestRatingID)
	assert.Equal(t, "full", stats.BestDealScoreID)
}

func TestSet_StatsUndefinedWithNoQualifyingMembers(t *testing.T) {
	t.Parallel()

	s := New()
	require.True(t, s.Add(product("bare", 0, 0, -1)))

	stats := s.Stats()
	assert.Nil(t, stats.LowestPrice)
	assert.Nil(t, stats.HighestRating)
	assert.Nil(t, stats.BestDealScore)
}

func TestSet_IsWinner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		members  []domain.Product
		queryID  string
		attr     Attribute
		expected bool
	}{
		{
			name:     "empty set has no winners",
			queryID:  "a",
			attr:     AttrPrice,
			expected: false,
		},
		{
			name:     "single member is never a winner",
			members:  []domain.Product{product("a", 10, 5, 99)},
			queryID:  "a",
			attr:     AttrPrice,
			expected: false,
		},
		{
			name: "lowest price wins",
			members: []domain.Product{
				product("a", 100, 4.0, 70),
				product("b", 80, 4.8, 90),
			},
			queryID:  "b",
			attr:     AttrPrice,
			expected: true,
		},
		{
			name: "higher price loses",
			members: []domain.Product{
				product("a", 100, 4.0, 70),
				product("b", 80, 4.8, 90),
			},
			queryID:  "a",
			attr:     AttrPrice,
			expected: false,
		},
		{
			name: "highest rating wins",
			members: []domain.Product{
				product("a", 100, 4.9, 70),
				product("b", 80, 4.8, 90),
			},
			queryID:  "a",
			attr:     AttrRating,
			expected: true,
		},
		{
			name: "best deal score wins",
			members: []domain.Product{
				product("a", 100, 4.0, 70),
				product("b", 80, 4.8, 90),
			},
			queryID:  "b",
			attr:     AttrDealScore,
			expected: true,
		},
		{
			name: "unknown attribute never wins",
			members: []domain.Product{
				product("a", 100, 4.0, 70),
				product("b", 80, 4.8, 90),
			},
			queryID:  "b",
			attr:     Attribute("bogus"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := New()
			for _, m := range tt.members {
				require.True(t, s.Add(m))
			}
			assert.Equal(t, tt.expected, s.IsWinner(tt.queryID, tt.attr))
		})
	}
}

func TestSet_TieKeepsFirstInInsertionOrder(t *testing.T) {
	t.Parallel()

	s := New()
	require.True(t, s.Add(product("first", 50, 4.5, 80)))
	require.True(t, s.Add(product("second", 50, 4.5, 80)))

	assert.True(t, s.IsWinner("first", AttrPrice))
	assert.False(t, s.IsWinner("second", AttrPrice))
	assert.True(t, s.IsWinner("first", AttrRating))
	assert.True(t, s.IsWinner("first", AttrDealScore))
}

func TestSet_MembersPreserveInsertionOrder(t *testing.T) {
	t.Parallel()

	s := New()
	require.True(t, s.Add(product("c", 30, 3, 10)))
	require.True(t, s.Add(product("a", 10, 4, 20)))
	require.True(t, s.Add(product("b", 20, 5, 30)))

	members := s.Members()
	require.Len(t, members, 3)
	assert.Equal(t, "c", members[0].ID)
	assert.Equal(t, "a", members[1].ID)
	assert.Equal(t, "b", members[2].ID)
}

func TestSet_RestoreEnforcesInvariants(t *testing.T) {
	t.Parallel()

	snapshot := []domain.Product{
		product("a", 10, 4, 20),
		product("a", 10, 4, 20), // duplicate
		product("b", 20, 5, 30),
		product("c", 30, 3, 10),
		product("d", 40, 2, 5),
		product("e", 50, 1, 1), // beyond capacity
	}

	s := New()
	s.Restore(snapshot)

	assert.Equal(t, MaxMembers, s.Len())
	assert.False(t, s.Contains("e"))
}
