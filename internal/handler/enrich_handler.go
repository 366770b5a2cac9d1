package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octobees/linecard/api/internal/dto"
	"github.com/octobees/linecard/api/internal/service"
)

// EnrichHandler exposes the manufacturer enrichment engine.
type EnrichHandler struct {
	enrich *service.EnrichmentService
	logger *zap.Logger
}

// NewEnrichHandler wires a new EnrichHandler instance.
func NewEnrichHandler(enrich *service.EnrichmentService, logger *zap.Logger) *EnrichHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrichHandler{enrich: enrich, logger: logger}
}

// Enrich handles GET/POST /api/enrich. The manufacturer name arrives as the
// `name` query parameter or in the JSON body.
func (h *EnrichHandler) Enrich(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		var payload dto.EnrichRequest
		if err := c.Bind(&payload); err == nil {
			name = payload.Name
		}
	}

	result, err := h.enrich.Enrich(c.Request().Context(), name)
	if err != nil {
		var upstreamErr *service.UpstreamError
		var extractionErr *service.ExtractionError
		switch {
		case errors.Is(err, service.ErrNameRequired):
			return Error(c, http.StatusBadRequest, "missing 'name' parameter")
		case errors.Is(err, service.ErrConfigMissing):
			return Error(c, http.StatusInternalServerError, "model configuration missing")
		case errors.As(err, &upstreamErr):
			return ErrorWithData(c, http.StatusBadGateway, "model endpoint error", map[string]any{"detail": upstreamErr.Detail})
		case errors.As(err, &extractionErr):
			return ErrorWithData(c, http.StatusBadGateway, "model returned unparsable JSON", map[string]any{"raw": extractionErr.RawPreview})
		default:
			h.logger.Error("enrich failed", zap.Error(err))
			return Error(c, http.StatusInternalServerError, "internal server error")
		}
	}

	return Success(c, http.StatusOK, "ok", result)
}
