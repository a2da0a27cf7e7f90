package feed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed seed.json
var seedData []byte

// StaticClient serves a bundled product dataset. It backs the seed command
// and local development when no upstream feed is configured.
type StaticClient struct {
	entries []ProductEntry
}

// NewStaticClient loads the bundled dataset.
func NewStaticClient() (*StaticClient, error) {
	var entries []ProductEntry
	if err := json.Unmarshal(seedData, &entries); err != nil {
		return nil, fmt.Errorf("parsing bundled dataset: %w", err)
	}
	return &StaticClient{entries: entries}, nil
}

// Fetch implements Client over the in-memory dataset. Category and paging
// parameters behave like the real feed's; Updated is ignored.
func (c *StaticClient) Fetch(ctx context.Context, req FetchRequest) (*FetchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := c.entries
	if req.Category != "" {
		matched = nil
		for _, e := range c.entries {
			if e.Category == req.Category {
				matched = append(matched, e)
			}
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := max(req.Offset, 0)

	var page []ProductEntry
	if offset < len(matched) {
		end := min(offset+limit, len(matched))
		page = matched[offset:end]
	}

	return &FetchResponse{
		Entries: page,
		Total:   len(matched),
		Offset:  offset,
		Limit:   limit,
		HasMore: offset+len(page) < len(matched),
	}, nil
}
