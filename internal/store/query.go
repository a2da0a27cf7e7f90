package store

import (
	"fmt"
	"strings"

	domain "github.com/souqly/souqly/pkg/types"
)

const (
	defaultLimit = 24
	maxLimit     = 200
)

// validOrderBy maps allowed sort keys to their SQL column expressions.
// Every expression ends with a created_at tiebreak so pagination is stable.
var validOrderBy = map[domain.SortKey]string{
	domain.SortFeatured:  "featured DESC, rating DESC, created_at DESC",
	domain.SortRating:    "rating DESC, created_at DESC",
	domain.SortPriceAsc:  "price ASC, created_at DESC",
	domain.SortPriceDesc: "price DESC, created_at DESC",
	domain.SortNewest:    "created_at DESC",
}

const defaultOrderBy = "created_at DESC"

const baseProductsSelect = `SELECT id, sku, name_en, COALESCE(name_ar, ''),
	COALESCE(description_en, ''), COALESCE(description_ar, ''),
	price, original_price, COALESCE(discount_pct, 0), currency,
	category, COALESCE(brand, ''), rating, review_count, deal_score,
	in_stock, featured, source, affiliate_url, image_urls,
	created_at, updated_at
FROM products`

const countProductsSelect = "SELECT COUNT(*) FROM products"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a product
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *ProductQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if len(q.Categories) > 0 {
		placeholders := make([]string, len(q.Categories))
		for i, c := range q.Categories {
			placeholders[i] = fmt.Sprintf("$%d", paramIdx)
			args = append(args, c)
			paramIdx++
		}
		conditions = append(conditions, fmt.Sprintf(
			"category IN (%s)", strings.Join(placeholders, ", "),
		))
	}

	if len(q.Brands) > 0 {
		placeholders := make([]string, len(q.Brands))
		for i, b := range q.Brands {
			placeholders[i] = fmt.Sprintf("$%d", paramIdx)
			args = append(args, b)
			paramIdx++
		}
		conditions = append(conditions, fmt.Sprintf(
			"brand IN (%s)", strings.Join(placeholders, ", "),
		))
	}

	if q.PriceMin != nil {
		conditions = append(conditions, fmt.Sprintf("price >= $%d", paramIdx))
		args = append(args, *q.PriceMin)
		paramIdx++
	}

	if q.PriceMax != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", paramIdx))
		args = append(args, *q.PriceMax)
		paramIdx++
	}

	if q.MinRating != nil {
		conditions = append(conditions, fmt.Sprintf("rating >= $%d", paramIdx))
		args = append(args, *q.MinRating)
		paramIdx++
	}

	if q.InStockOnly {
		conditions = append(conditions, "in_stock = TRUE")
	}

	if q.DiscountOnly {
		conditions = append(conditions, "discount_pct > 0")
	}

	if q.FeaturedOnly {
		conditions = append(conditions, "featured = TRUE")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseProductsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countProductsSelect + whereClause

	return dataSQL, countSQL, args
}
