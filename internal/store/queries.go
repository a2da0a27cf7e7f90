package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

const productColumns = `id, sku, name_en, COALESCE(name_ar, ''),
	COALESCE(description_en, ''), COALESCE(description_ar, ''),
	price, original_price, COALESCE(discount_pct, 0), currency,
	category, COALESCE(brand, ''), rating, review_count, deal_score,
	in_stock, featured, source, affiliate_url, image_urls,
	created_at, updated_at`

// Product queries.
const (
	queryUpsertProduct = `
		INSERT INTO products (
			sku, name_en, name_ar, description_en, description_ar,
			price, original_price, discount_pct, currency,
			category, brand, rating, review_count,
			in_stock, featured, source, affiliate_url, image_urls,
			created_at, updated_at
		) VALUES (
			@sku, @name_en, @name_ar, @description_en, @description_ar,
			@price, @original_price, @discount_pct, @currency,
			@category, @brand, @rating, @review_count,
			@in_stock, @featured, @source, @affiliate_url, @image_urls,
			now(), now()
		)
		ON CONFLICT (sku, source) DO UPDATE SET
			name_en = EXCLUDED.name_en,
			name_ar = EXCLUDED.name_ar,
			description_en = EXCLUDED.description_en,
			description_ar = EXCLUDED.description_ar,
			price = EXCLUDED.price,
			original_price = EXCLUDED.original_price,
			discount_pct = EXCLUDED.discount_pct,
			currency = EXCLUDED.currency,
			category = EXCLUDED.category,
			brand = EXCLUDED.brand,
			in_stock = EXCLUDED.in_stock,
			featured = EXCLUDED.featured,
			affiliate_url = EXCLUDED.affiliate_url,
			image_urls = EXCLUDED.image_urls,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryCreateProduct = `
		INSERT INTO products (
			id, sku, name_en, name_ar, description_en, description_ar,
			price, original_price, discount_pct, currency,
			category, brand, rating, review_count,
			in_stock, featured, source, affiliate_url, image_urls,
			created_at, updated_at
		) VALUES (
			@id, @sku, @name_en, @name_ar, @description_en, @description_ar,
			@price, @original_price, @discount_pct, @currency,
			@category, @brand, @rating, @review_count,
			@in_stock, @featured, @source, @affiliate_url, @image_urls,
			now(), now()
		)
		RETURNING created_at, updated_at`

	queryUpdateProduct = `
		UPDATE products SET
			sku = @sku,
			name_en = @name_en,
			name_ar = @name_ar,
			description_en = @description_en,
			description_ar = @description_ar,
			price = @price,
			original_price = @original_price,
			discount_pct = @discount_pct,
			currency = @currency,
			category = @category,
			brand = @brand,
			in_stock = @in_stock,
			featured = @featured,
			affiliate_url = @affiliate_url,
			image_urls = @image_urls,
			updated_at = now()
		WHERE id = @id
		RETURNING updated_at`

	queryDeleteProduct = `DELETE FROM products WHERE id = $1`

	queryGetProduct = `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1`

	queryListProductsByIDs = `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = ANY($1)`

	querySearchProducts = `
		SELECT ` + productColumns + `
		FROM products
		WHERE name_en ILIKE '%' || $1 || '%'
			OR name_ar ILIKE '%' || $1 || '%'
			OR brand ILIKE '%' || $1 || '%'
		ORDER BY featured DESC, rating DESC
		LIMIT $2`

	queryUpdateDealScore = `
		UPDATE products SET
			deal_score = $2,
			updated_at = now()
		WHERE id = $1`

	queryListUnscoredProducts = `
		SELECT ` + productColumns + `
		FROM products
		WHERE deal_score IS NULL
		ORDER BY created_at DESC
		LIMIT $1`
)

// Category queries.
const (
	queryUpsertCategory = `
		INSERT INTO categories (slug, name_en, name_ar, parent, position)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO UPDATE SET
			name_en = EXCLUDED.name_en,
			name_ar = EXCLUDED.name_ar,
			parent = EXCLUDED.parent,
			position = EXCLUDED.position`

	queryListCategories = `
		SELECT slug, name_en, name_ar, COALESCE(parent, ''), position
		FROM categories
		ORDER BY position ASC, slug ASC`
)

// Review queries.
const (
	queryCreateReview = `
		INSERT INTO reviews (product_id, author, rating, body, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, created_at`

	queryListReviews = `
		SELECT id, product_id, author, rating, body, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	queryCountReviews = `SELECT COUNT(*) FROM reviews WHERE product_id = $1`

	queryRecomputeProductRating = `
		UPDATE products SET
			rating = COALESCE(agg.avg_rating, 0),
			review_count = agg.total,
			updated_at = now()
		FROM (
			SELECT AVG(rating)::numeric(3,2) AS avg_rating, COUNT(*) AS total
			FROM reviews
			WHERE product_id = $1
		) AS agg
		WHERE id = $1`
)

// Price alert queries.
const (
	alertColumns = `id, COALESCE(session_id, ''), COALESCE(email, ''), product_id,
		target_price, enabled, last_triggered_at, created_at, updated_at`

	queryCreatePriceAlert = `
		INSERT INTO price_alerts (session_id, email, product_id, target_price, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING id, created_at, updated_at`

	queryGetPriceAlert = `
		SELECT ` + alertColumns + `
		FROM price_alerts
		WHERE id = $1`

	queryListPriceAlerts = `
		SELECT ` + alertColumns + `
		FROM price_alerts
		WHERE session_id = $1
		ORDER BY created_at DESC`

	querySetPriceAlertEnabled = `
		UPDATE price_alerts SET enabled = $2, updated_at = now() WHERE id = $1`

	queryDeletePriceAlert = `DELETE FROM price_alerts WHERE id = $1`

	queryListDueAlerts = `
		SELECT a.id, COALESCE(a.session_id, ''), COALESCE(a.email, ''), a.product_id,
			a.target_price, a.enabled, a.last_triggered_at, a.created_at, a.updated_at
		FROM price_alerts a
		JOIN products p ON p.id = a.product_id
		WHERE a.enabled = TRUE
			AND p.price > 0
			AND p.price <= a.target_price
		ORDER BY a.created_at ASC`

	queryMarkAlertTriggered = `
		UPDATE price_alerts SET last_triggered_at = $2, updated_at = now() WHERE id = $1`

	queryHasRecentNotification = `
		SELECT EXISTS(
			SELECT 1 FROM alert_notifications
			WHERE alert_id = $1 AND created_at > now() - $2::interval
		)`

	queryCreateNotification = `
		INSERT INTO alert_notifications (alert_id, product_id, price, notified, created_at)
		VALUES ($1, $2, $3, FALSE, now())
		RETURNING id, created_at`

	queryListPendingNotifications = `
		SELECT id, alert_id, product_id, price, notified, created_at
		FROM alert_notifications
		WHERE notified = FALSE
		ORDER BY created_at ASC`

	queryMarkNotificationSent = `
		UPDATE alert_notifications SET notified = TRUE WHERE id = $1`
)

// Order queries.
const (
	queryCreateOrder = `
		INSERT INTO orders (session_id, items, total, currency, status, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, created_at`

	queryGetOrder = `
		SELECT id, session_id, items, total, currency, status, created_at
		FROM orders
		WHERE id = $1`

	queryListOrdersBySession = `
		SELECT id, session_id, items, total, currency, status, created_at
		FROM orders
		WHERE session_id = $1
		ORDER BY created_at DESC`
)

// Job run queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name, started_at, status)
		VALUES ($1, now(), 'running')
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at = now(),
			status = $2,
			error_text = NULLIF($3, ''),
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status, COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE ($1 = '' OR job_name = $1)
		ORDER BY started_at DESC
		LIMIT $2`
)

// Dashboard queries.
const queryDashboardStats = `
	SELECT
		(SELECT COUNT(*) FROM products) AS products_total,
		(SELECT COUNT(*) FROM products WHERE in_stock) AS products_in_stock,
		(SELECT COUNT(*) FROM products WHERE featured) AS products_featured,
		(SELECT COUNT(*) FROM products WHERE discount_pct > 0) AS products_on_sale,
		(SELECT COUNT(*) FROM categories) AS categories_total,
		(SELECT COUNT(*) FROM reviews) AS reviews_total,
		(SELECT COUNT(*) FROM price_alerts) AS alerts_total,
		(SELECT COUNT(*) FROM price_alerts WHERE enabled) AS alerts_enabled,
		(SELECT COUNT(*) FROM alert_notifications WHERE NOT notified) AS alerts_pending,
		(SELECT COUNT(*) FROM orders) AS orders_total,
		(SELECT COALESCE(AVG(rating), 0) FROM products WHERE review_count > 0) AS average_rating`
