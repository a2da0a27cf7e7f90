package handlers_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/souqly/souqly/internal/api/handlers"
	"github.com/souqly/souqly/internal/kv"
	"github.com/souqly/souqly/internal/session"
	"github.com/souqly/souqly/pkg/logger"
	domain "github.com/souqly/souqly/pkg/types"
)

func newSessions(_ *testing.T) *session.Manager {
	return session.NewManager(kv.NewMemoryStore(), time.Hour, logger.Nop())
}

// newSessionCtx builds an echo context for a session-scoped request. An
// empty sessionID leaves the header off. Path params are set as name/value
// pairs.
func newSessionCtx(
	_ *testing.T,
	method, target, sessionID, body string,
	params ...string,
) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if sessionID != "" {
		req.Header.Set(handlers.SessionHeader, sessionID)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	return c, rec
}

func catalogProduct(id, sku, nameEn string) domain.Product {
	return domain.Product{
		ID:       id,
		SKU:      sku,
		Name:     domain.LocalizedText{En: nameEn, Ar: "منتج"},
		Price:    99.99,
		Currency: "USD",
		Category: "electronics",
		InStock:  true,
		Source:   "feed",
	}
}
