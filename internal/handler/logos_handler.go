package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octobees/linecard/api/internal/repository"
	"github.com/octobees/linecard/api/internal/service"
)

// LogosHandler serves stored logo blobs.
type LogosHandler struct {
	logos  *service.LogosService
	logger *zap.Logger
}

// NewLogosHandler wires a handler backed by the logos service.
func NewLogosHandler(logos *service.LogosService, logger *zap.Logger) *LogosHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogosHandler{logos: logos, logger: logger}
}

// Serve handles GET /logos/:name, backing the URLs returned by upload.
func (h *LogosHandler) Serve(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return Error(c, http.StatusBadRequest, "missing logo name")
	}

	logo, err := h.logos.Fetch(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrLogoNotFound) {
			return Error(c, http.StatusNotFound, "logo not found")
		}
		h.logger.Error("fetch logo failed", zap.Error(err), zap.String("name", name))
		return Error(c, http.StatusInternalServerError, "failed to fetch logo")
	}

	return c.Blob(http.StatusOK, logo.ContentType, logo.Data)
}
