package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/linecard/api/internal/config"
)

func rateLimitedRequest(t *testing.T, mw echo.MiddlewareFunc) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/enrich?name=Acme", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	if err := mw(next)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec.Code
}

func TestEnrichRateLimiter_ExhaustsBurst(t *testing.T) {
	mw := EnrichRateLimiter(config.RateLimitConfig{Requests: 2, Interval: time.Hour})

	for i := 0; i < 2; i++ {
		if code := rateLimitedRequest(t, mw); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}
	if code := rateLimitedRequest(t, mw); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the burst is spent, got %d", code)
	}
}

func TestEnrichRateLimiter_DisabledConfig(t *testing.T) {
	mw := EnrichRateLimiter(config.RateLimitConfig{})

	for i := 0; i < 20; i++ {
		if code := rateLimitedRequest(t, mw); code != http.StatusOK {
			t.Fatalf("request %d: expected pass-through, got %d", i+1, code)
		}
	}
}
