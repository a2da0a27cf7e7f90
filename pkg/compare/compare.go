// Package compare implements the bounded product comparison set used for
// side-by-side attribute comparison in the storefront.
package compare

import (
	domain "github.com/souqly/souqly/pkg/types"
)

// MaxMembers is the comparison set capacity.
const MaxMembers = 4

// Attribute identifies a comparable product attribute.
type Attribute string

// Comparable attributes.
const (
	AttrPrice     Attribute = "price"
	AttrRating    Attribute = "rating"
	AttrDealScore Attribute = "deal_score"
)

// Stats holds per-attribute extremes across the set, with the member that
// achieves each. A field is nil when no member defines the attribute.
type Stats struct {
	LowestPrice   *float64 `json:"lowest_price,omitempty"`
	LowestPriceID string   `json:"lowest_price_id,omitempty"`

	HighestRating   *float64 `json:"highest_rating,omitempty"`
	HighestRatingID string   `json:"highest_rating_id,omitempty"`

	BestDealScore   *int   `json:"best_deal_score,omitempty"`
	BestDealScoreID string `json:"best_deal_score_id,omitempty"`
}

// Set is an ordered, capacity-bounded collection of products selected for
// comparison. Insertion order is preserved for display. Stats are recomputed
// on every mutation. The zero value is not usable; call New.
type Set struct {
	members []domain.Product
	stats   Stats
}

// New returns an empty comparison set.
func New() *Set {
	return &Set{}
}

// Add appends a product to the set. It returns false without mutating when
// the set is at capacity or the product is already a member.
func (s *Set) Add(p domain.Product) bool {
	if len(s.members) >= MaxMembers {
		return false
	}
	if s.Contains(p.ID) {
		return false
	}
	s.members = append(s.members, p)
	s.recompute()
	return true
}

// Remove drops the member with the given ID. Removing an absent ID is a no-op.
func (s *Set) Remove(productID string) {
	for i := range s.members {
		if s.members[i].ID == productID {
			s.members = append(s.members[:i], s.members[i+1:]...)
			s.recompute()
			return
		}
	}
}

// Clear empties the set.
func (s *Set) Clear() {
	s.members = nil
	s.recompute()
}

// Contains reports whether a product is a member.
func (s *Set) Contains(productID string) bool {
	for i := range s.members {
		if s.members[i].ID == productID {
			return true
		}
	}
	return false
}

// Len returns the member count.
func (s *Set) Len() int {
	return len(s.members)
}

// Members returns the members in insertion order. The returned slice is a
// copy; mutating it does not affect the set.
func (s *Set) Members() []domain.Product {
	out := make([]domain.Product, len(s.members))
	copy(out, s.members)
	return out
}

// Stats returns the current per-attribute extremes.
func (s *Set) Stats() Stats {
	return s.stats
}

// IsWinner reports whether the given product holds the best value for the
// attribute. Comparison is meaningless with fewer than two members, so no
// product is ever a winner then.
func (s *Set) IsWinner(productID string, attr Attribute) bool {
	if len(s.members) < 2 {
		return false
	}
	switch attr {
	case AttrPrice:
		return s.stats.LowestPrice != nil && s.stats.LowestPriceID == productID
	case AttrRating:
		return s.stats.HighestRating != nil && s.stats.HighestRatingID == productID
	case AttrDealScore:
		return s.stats.BestDealScore != nil && s.stats.BestDealScoreID == productID
	}
	return false
}

// recompute rebuilds stats from scratch. Ties keep the first member in
// insertion order; this is the documented contract, not an accident.
func (s *Set) recompute() {
	s.stats = Stats{}

	for i := range s.members {
		m := &s.members[i]

		if m.Price > 0 {
			if s.stats.LowestPrice == nil || m.Price < *s.stats.LowestPrice {
				price := m.Price
				s.stats.LowestPrice = &price
				s.stats.LowestPriceID = m.ID
			}
		}

		if m.Rating > 0 {
			if s.stats.HighestRating == nil || m.Rating > *s.stats.HighestRating {
				rating := m.Rating
				s.stats.HighestRating = &rating
				s.stats.HighestRatingID = m.ID
			}
		}

		if m.DealScore != nil {
			if s.stats.BestDealScore == nil || *m.DealScore > *s.stats.BestDealScore {
				score := *m.DealScore
				s.stats.BestDealScore = &score
				s.stats.BestDealScoreID = m.ID
			}
		}
	}
}

// Restore replaces the set contents from a persisted snapshot, enforcing
// capacity and uniqueness. Members beyond capacity or with duplicate IDs
// are dropped silently; persisted session state is best-effort.
func (s *Set) Restore(members []domain.Product) {
	s.members = nil
	for i := range members {
		if len(s.members) >= MaxMembers {
			break
		}
		if s.Contains(members[i].ID) {
			continue
		}
		s.members = append(s.members, members[i])
	}
	s.recompute()
}
