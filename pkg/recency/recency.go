// Package recency implements the bounded most-recent-first list behind
// "recently viewed" and "recent searches".
package recency

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 10

// List is an ordered, deduplicated, capacity-bounded MRU list. Recording an
// existing key moves it to the front; entries beyond capacity are evicted
// from the tail.
type List struct {
	capacity int
	entries  []string
}

// NewList returns an empty list with the given capacity.
func NewList(capacity int) *List {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List{capacity: capacity}
}

// Record inserts key at the front. An existing key is moved, not duplicated,
// so the length is unchanged. Otherwise the key is prepended and the oldest
// entry beyond capacity is evicted.
func (l *List) Record(key string) {
	if key == "" {
		return
	}

	for i, existing := range l.entries {
		if existing == key {
			copy(l.entries[1:i+1], l.entries[:i])
			l.entries[0] = key
			return
		}
	}

	l.entries = append([]string{key}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// Clear empties the list.
func (l *List) Clear() {
	l.entries = nil
}

// Items returns a most-recent-first snapshot. Mutating the returned slice
// does not affect the list.
func (l *List) Items() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the entry count.
func (l *List) Len() int {
	return len(l.entries)
}

// Capacity returns the configured bound.
func (l *List) Capacity() int {
	return l.capacity
}

// Restore replaces the contents from a persisted snapshot, truncating to
// capacity and dropping duplicates. Persisted state is best-effort, so a
// corrupt snapshot degrades instead of erroring.
func (l *List) Restore(entries []string) {
	l.entries = nil
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		l.entries = append(l.entries, e)
		if len(l.entries) >= l.capacity {
			break
		}
	}
}
