package feed

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	domain "github.com/souqly/souqly/pkg/types"
)

const defaultMaxPages = 10

// Paginator walks feed result pages and collects domain products.
type Paginator struct {
	client   Client
	source   string
	logger   *log.Logger
	pageSize int
	maxPages int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithPageSize overrides the default page size.
func WithPageSize(size int) PaginatorOption {
	return func(p *Paginator) {
		p.pageSize = size
	}
}

// WithMaxPages overrides the default per-cycle page cap.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		p.maxPages = n
	}
}

// WithPaginatorLogger sets the logger.
func WithPaginatorLogger(l *log.Logger) PaginatorOption {
	return func(p *Paginator) {
		p.logger = l
	}
}

// NewPaginator creates a new Paginator. Products are tagged with the given
// source name.
func NewPaginator(client Client, source string, opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		client:   client,
		source:   source,
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PaginateResult holds the outcome of one paginated fetch cycle.
type PaginateResult struct {
	Products  []domain.Product
	TotalSeen int
	PagesUsed int
	StoppedAt string // "max_pages", "no_more_results"
}

// Paginate fetches feed pages until the feed reports no more results or the
// per-cycle page cap is reached. Entries with no SKU are skipped, since they
// cannot be keyed in the catalog.
func (p *Paginator) Paginate(ctx context.Context, req FetchRequest) (*PaginateResult, error) {
	req.Limit = p.pageSize

	result := &PaginateResult{}

	for page := range p.maxPages {
		req.Offset = page * p.pageSize

		resp, err := p.client.Fetch(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		result.PagesUsed++

		if len(resp.Entries) == 0 {
			result.StoppedAt = "no_more_results"
			return result, nil
		}

		for i := range resp.Entries {
			result.TotalSeen++

			if resp.Entries[i].SKU == "" {
				if p.logger != nil {
					p.logger.Warn(
						"skipping feed entry without sku",
						"title", resp.Entries[i].TitleEn,
					)
				}
				continue
			}

			result.Products = append(result.Products, toProduct(&resp.Entries[i], p.source))
		}

		if !resp.HasMore {
			result.StoppedAt = "no_more_results"
			return result, nil
		}
	}

	result.StoppedAt = "max_pages"
	return result, nil
}
