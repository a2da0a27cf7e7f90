package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/souqly/souqly/internal/session"
	"github.com/souqly/souqly/internal/store"
	"github.com/souqly/souqly/pkg/recency"
	domain "github.com/souqly/souqly/pkg/types"
)

const defaultSearchLimit = 24

// SearchHandler handles product text search requests.
type SearchHandler struct {
	store          store.Store
	sessions       *session.Manager
	recentSearches int
}

// NewSearchHandler creates a new SearchHandler. recentSearchesSize is the
// per-session recent searches list capacity.
func NewSearchHandler(s store.Store, sess *session.Manager, recentSearchesSize int) *SearchHandler {
	return &SearchHandler{store: s, sessions: sess, recentSearches: recentSearchesSize}
}

// SearchInput is the input for the search endpoint.
type SearchInput struct {
	Query     string `query:"q"              doc:"Search term (matches English and Arabic text)" minLength:"1" example:"keyboard"`
	Limit     int    `query:"limit"          doc:"Maximum results (default 24)"                  minimum:"1"   maximum:"200"`
	SessionID string `header:"X-Session-ID"  doc:"Browsing session ID (optional)"`
}

// SearchOutput is the response for the search endpoint.
type SearchOutput struct {
	Body struct {
		Products []domain.Product `json:"products"`
		Query    string           `json:"query"`
		Total    int              `json:"total"`
	}
}

// Search returns products matching a text search over bilingual name and
// description fields. Non-empty searches are recorded in the caller's
// recent searches when a session ID is provided.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	term := strings.TrimSpace(input.Query)
	if term == "" {
		return nil, huma.Error422UnprocessableEntity("search term must not be blank")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	products, err := h.store.SearchProducts(ctx, term, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("search failed: " + err.Error())
	}

	if products == nil {
		products = []domain.Product{}
	}

	if input.SessionID != "" {
		l := recency.NewList(h.recentSearches)
		l.Restore(h.sessions.RecentSearches(ctx, input.SessionID))
		l.Record(term)
		h.sessions.SaveRecentSearches(ctx, input.SessionID, l.Items())
	}

	out := &SearchOutput{}
	out.Body.Products = products
	out.Body.Query = term
	out.Body.Total = len(products)

	return out, nil
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search products",
		Description: "Returns products matching a text search over bilingual name and description fields.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.Search)
}
