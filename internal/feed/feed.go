// Package feed provides a client for the upstream affiliate product feed,
// abstracted behind interfaces for testability.
package feed

import (
	"context"
)

// FetchRequest defines the parameters for a feed page fetch.
type FetchRequest struct {
	Category string
	Limit    int
	Offset   int
	Updated  string // RFC 3339; only entries updated since this instant
}

// FetchResponse holds one page of feed entries.
type FetchResponse struct {
	Entries []ProductEntry
	Total   int
	Offset  int
	Limit   int
	HasMore bool
}

// Client defines the interface for fetching product pages from the feed.
type Client interface {
	Fetch(ctx context.Context, req FetchRequest) (*FetchResponse, error)
}
