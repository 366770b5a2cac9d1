package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/octobees/linecard/api/internal/entity"
	"github.com/octobees/linecard/api/internal/repository"
	"github.com/octobees/linecard/api/internal/service"
)

func newLogosHandler(repo repository.LogosRepository) *LogosHandler {
	return NewLogosHandler(service.NewLogosService(repo, ""), nil)
}

func logoContext(name string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/logos/"+name, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues(name)
	return c, rec
}

func TestLogosHandler_Serve(t *testing.T) {
	repo := &logosRepoStub{logo: &entity.LogoObject{
		Name:        "acme-1.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	}}
	h := newLogosHandler(repo)

	c, rec := logoContext("acme-1.png")
	if err := h.Serve(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}
	if rec.Body.String() != "png-bytes" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestLogosHandler_NotFound(t *testing.T) {
	h := newLogosHandler(&logosRepoStub{err: repository.ErrLogoNotFound})

	c, rec := logoContext("missing.png")
	if err := h.Serve(c); err != nil {
		t.Fatalf("handler should write response: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
