package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	authpkg "github.com/octobees/linecard/api/internal/auth"
)

func requireAdmin(t *testing.T, principal *authpkg.Principal, allowlist []string) (int, string, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/vendor", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(ContextKeyPrincipal, principal)
	}

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}
	if err := RequireAdmin(allowlist)(next)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec.Code, rec.Body.String(), called
}

func TestRequireAdmin_Anonymous(t *testing.T) {
	code, body, called := requireAdmin(t, nil, []string{"admin@example.com"})
	if code != http.StatusForbidden || called {
		t.Fatalf("expected 403 without handler call, got %d (called=%v)", code, called)
	}
	if !strings.Contains(body, "forbidden") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestRequireAdmin_AllowlistedEmail(t *testing.T) {
	code, _, called := requireAdmin(t, &authpkg.Principal{Email: "admin@example.com"}, []string{"admin@example.com"})
	if code != http.StatusOK || !called {
		t.Fatalf("expected pass-through, got %d (called=%v)", code, called)
	}
}

func TestRequireAdmin_AdminRole(t *testing.T) {
	principal := &authpkg.Principal{Email: "other@example.com", Roles: []string{"admin"}}
	code, _, called := requireAdmin(t, principal, []string{"admin@example.com"})
	if code != http.StatusOK || !called {
		t.Fatalf("expected role to grant access, got %d (called=%v)", code, called)
	}
}

func TestRequireAdmin_UnlistedEmail(t *testing.T) {
	code, _, called := requireAdmin(t, &authpkg.Principal{Email: "guest@example.com"}, []string{"admin@example.com"})
	if code != http.StatusForbidden || called {
		t.Fatalf("expected 403, got %d (called=%v)", code, called)
	}
}
