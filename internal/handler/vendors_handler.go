package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octobees/linecard/api/internal/dto"
	middlewarepkg "github.com/octobees/linecard/api/internal/middleware"
	"github.com/octobees/linecard/api/internal/repository"
	"github.com/octobees/linecard/api/internal/service"
)

// VendorsHandler serves the line card read path and the vendor write paths.
type VendorsHandler struct {
	vendors *service.VendorsService
	logger  *zap.Logger
}

// NewVendorsHandler wires a new VendorsHandler instance.
func NewVendorsHandler(vendors *service.VendorsService, logger *zap.Logger) *VendorsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VendorsHandler{vendors: vendors, logger: logger}
}

// List handles GET /api/linecard, the single authoritative read path.
func (h *VendorsHandler) List(c echo.Context) error {
	entries, err := h.vendors.List(c.Request().Context())
	if err != nil {
		h.logger.Error("list vendors failed", zap.Error(err))
		return Error(c, http.StatusInternalServerError, "failed to list vendors")
	}
	return Success(c, http.StatusOK, "ok", entries)
}

// Create handles POST /api/vendor. Authorization is enforced by middleware;
// the authenticated principal stamps createdBy.
func (h *VendorsHandler) Create(c echo.Context) error {
	var payload dto.CreateVendorRequest
	if err := c.Bind(&payload); err != nil {
		return Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	createdBy := ""
	if principal := middlewarepkg.PrincipalFromContext(c); principal != nil {
		createdBy = principal.Email
	}

	id, err := h.vendors.Create(c.Request().Context(), payload, createdBy)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVendorNameRequired):
			return Error(c, http.StatusBadRequest, "vendor name is required")
		case errors.Is(err, service.ErrInvalidLogoURL):
			return Error(c, http.StatusBadRequest, "logoUrl must be an absolute http(s) URL")
		default:
			h.logger.Error("create vendor failed", zap.Error(err))
			return Error(c, http.StatusInternalServerError, "failed to store vendor")
		}
	}

	return Success(c, http.StatusCreated, "vendor stored", map[string]any{"ok": true, "id": id})
}

// Delete handles DELETE /api/vendor?id=. The id is required before the store
// is contacted; unknown ids surface the store's not-found.
func (h *VendorsHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return Error(c, http.StatusBadRequest, "missing id")
	}

	if err := h.vendors.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVendorID):
			return Error(c, http.StatusBadRequest, "invalid id")
		case errors.Is(err, repository.ErrVendorNotFound):
			return Error(c, http.StatusNotFound, "vendor not found")
		default:
			h.logger.Error("delete vendor failed", zap.Error(err), zap.String("id", id))
			return Error(c, http.StatusInternalServerError, "failed to delete vendor")
		}
	}

	return Success(c, http.StatusOK, "vendor deleted", map[string]any{"ok": true})
}
