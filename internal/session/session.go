// Package session manages per-visitor state: the comparison set, wishlist,
// cart, recently viewed products, and recent searches.
//
// Session state is a convenience cache keyed by an opaque session ID the
// client carries in the X-Session-ID header. Reads and writes are best
// effort: a failed read falls back to an empty state and a failed write is
// dropped, both logged and counted, so a degraded key-value backend never
// takes product browsing down with it.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/souqly/souqly/internal/kv"
	"github.com/souqly/souqly/internal/metrics"
	domain "github.com/souqly/souqly/pkg/types"
)

// Kind identifies one slice of session state.
type Kind string

const (
	KindCompare        Kind = "compare"
	KindWishlist       Kind = "wishlist"
	KindCart           Kind = "cart"
	KindRecentlyViewed Kind = "recently_viewed"
	KindRecentSearches Kind = "recent_searches"
)

var allKinds = []Kind{
	KindCompare, KindWishlist, KindCart, KindRecentlyViewed, KindRecentSearches,
}

// Manager reads and writes typed session state envelopes.
type Manager struct {
	kv     kv.Store
	ttl    time.Duration
	logger *slog.Logger
}

// NewManager creates a Manager over the given key-value store. State expires
// after ttl of inactivity on each kind.
func NewManager(store kv.Store, ttl time.Duration, logger *slog.Logger) *Manager {
	return &Manager{
		kv:     store,
		ttl:    ttl,
		logger: logger,
	}
}

func key(sessionID string, kind Kind) string {
	return fmt.Sprintf("session:%s:%s", sessionID, kind)
}

// load unmarshals the envelope for one kind into dst. Missing keys and read
// errors both leave dst untouched; read errors are logged and counted.
func (m *Manager) load(ctx context.Context, sessionID string, kind Kind, dst any) {
	raw, err := m.kv.Get(ctx, key(sessionID, kind))
	if err != nil {
		if err != kv.ErrNotFound {
			m.logger.Warn("session read failed, using empty state",
				"kind", string(kind), "error", err)
			metrics.SessionReadFailures.WithLabelValues(string(kind)).Inc()
		}
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		m.logger.Warn("session state corrupt, using empty state",
			"kind", string(kind), "error", err)
		metrics.SessionReadFailures.WithLabelValues(string(kind)).Inc()
	}
}

// save marshals src and stores it under the kind's key. Write errors are
// logged and counted but never returned.
func (m *Manager) save(ctx context.Context, sessionID string, kind Kind, src any) {
	raw, err := json.Marshal(src)
	if err != nil {
		m.logger.Error("session state marshal failed", "kind", string(kind), "error", err)
		metrics.SessionWriteFailures.WithLabelValues(string(kind)).Inc()
		return
	}
	if err := m.kv.Set(ctx, key(sessionID, kind), raw, m.ttl); err != nil {
		m.logger.Warn("session write dropped", "kind", string(kind), "error", err)
		metrics.SessionWriteFailures.WithLabelValues(string(kind)).Inc()
	}
}

type idsEnvelope struct {
	ProductIDs []string `json:"product_ids"`
}

// CompareIDs returns the product IDs in the session's comparison set, in
// first-added order.
func (m *Manager) CompareIDs(ctx context.Context, sessionID string) []string {
	var env idsEnvelope
	m.load(ctx, sessionID, KindCompare, &env)
	return env.ProductIDs
}

// SaveCompareIDs persists the comparison set membership.
func (m *Manager) SaveCompareIDs(ctx context.Context, sessionID string, ids []string) {
	m.save(ctx, sessionID, KindCompare, idsEnvelope{ProductIDs: ids})
}

// Wishlist returns the session's saved product IDs, most recently added first.
func (m *Manager) Wishlist(ctx context.Context, sessionID string) []string {
	var env idsEnvelope
	m.load(ctx, sessionID, KindWishlist, &env)
	return env.ProductIDs
}

// SaveWishlist persists the wishlist membership.
func (m *Manager) SaveWishlist(ctx context.Context, sessionID string, ids []string) {
	m.save(ctx, sessionID, KindWishlist, idsEnvelope{ProductIDs: ids})
}

// Cart returns the session's cart, empty if none exists.
func (m *Manager) Cart(ctx context.Context, sessionID string) domain.Cart {
	var cart domain.Cart
	m.load(ctx, sessionID, KindCart, &cart)
	return cart
}

// SaveCart persists the cart.
func (m *Manager) SaveCart(ctx context.Context, sessionID string, cart domain.Cart) {
	m.save(ctx, sessionID, KindCart, cart)
}

// ClearCart removes the session's cart, typically after checkout.
func (m *Manager) ClearCart(ctx context.Context, sessionID string) {
	if err := m.kv.Delete(ctx, key(sessionID, KindCart)); err != nil {
		m.logger.Warn("cart clear dropped", "error", err)
		metrics.SessionWriteFailures.WithLabelValues(string(KindCart)).Inc()
	}
}

type recencyEnvelope struct {
	Entries []string `json:"entries"`
}

// RecentlyViewed returns the session's recently viewed product IDs, most
// recent first.
func (m *Manager) RecentlyViewed(ctx context.Context, sessionID string) []string {
	var env recencyEnvelope
	m.load(ctx, sessionID, KindRecentlyViewed, &env)
	return env.Entries
}

// SaveRecentlyViewed persists the recently viewed list.
func (m *Manager) SaveRecentlyViewed(ctx context.Context, sessionID string, entries []string) {
	m.save(ctx, sessionID, KindRecentlyViewed, recencyEnvelope{Entries: entries})
}

// RecentSearches returns the session's recent search terms, most recent first.
func (m *Manager) RecentSearches(ctx context.Context, sessionID string) []string {
	var env recencyEnvelope
	m.load(ctx, sessionID, KindRecentSearches, &env)
	return env.Entries
}

// SaveRecentSearches persists the recent search list.
func (m *Manager) SaveRecentSearches(ctx context.Context, sessionID string, entries []string) {
	m.save(ctx, sessionID, KindRecentSearches, recencyEnvelope{Entries: entries})
}

// Clear removes every slice of state for a session.
func (m *Manager) Clear(ctx context.Context, sessionID string) {
	for _, kind := range allKinds {
		if err := m.kv.Delete(ctx, key(sessionID, kind)); err != nil {
			m.logger.Warn("session clear dropped", "kind", string(kind), "error", err)
		}
	}
}
