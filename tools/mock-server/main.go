// Package main implements a mock affiliate feed server for local development.
// It serves the bundled product catalog in the feed wire format so the
// ingestion pipeline can be exercised without real feed credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type productEntry struct {
	SKU      string `json:"sku"`
	TitleEn  string `json:"title_en"`
	Category string `json:"category"`

	// Remaining fields pass through untouched.
	Raw json.RawMessage `json:"-"`
}

type feedResponse struct {
	Products []json.RawMessage `json:"products"`
	Total    int               `json:"total"`
	Offset   int               `json:"offset"`
	Limit    int               `json:"limit"`
	Next     string            `json:"next"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "internal/feed/seed.json", "path to product fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	entries, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(entries))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", productsHandler(logger, entries))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock feed server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) ([]productEntry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	entries := make([]productEntry, 0, len(raws))
	for _, raw := range raws {
		var e productEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("parsing fixture entry: %w", err)
		}
		e.Raw = raw
		entries = append(entries, e)
	}
	return entries, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func productsHandler(logger *slog.Logger, entries []productEntry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Require a bearer token but accept any value.
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			logger.Warn("products request missing bearer token")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"error": "missing api key"})
			return
		}

		category := r.URL.Query().Get("category")

		limit := 100
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil && v > 0 {
				limit = v
			}
		}
		offset := 0
		if raw := r.URL.Query().Get("offset"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
				offset = v
			}
		}

		matched := make([]json.RawMessage, 0, len(entries))
		for _, e := range entries {
			if category != "" && e.Category != category {
				continue
			}
			matched = append(matched, e.Raw)
		}

		total := len(matched)
		if offset > total {
			offset = total
		}
		end := offset + limit
		if end > total {
			end = total
		}

		next := ""
		if end < total {
			next = fmt.Sprintf("/products?offset=%d&limit=%d", end, limit)
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(feedResponse{
			Products: matched[offset:end],
			Total:    total,
			Offset:   offset,
			Limit:    limit,
			Next:     next,
		})
	}
}
