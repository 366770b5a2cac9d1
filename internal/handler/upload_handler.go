package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octobees/linecard/api/internal/dto"
	"github.com/octobees/linecard/api/internal/service"
)

// UploadHandler receives base64 logo uploads from administrators.
type UploadHandler struct {
	logos  *service.LogosService
	logger *zap.Logger
}

// NewUploadHandler wires a handler backed by the logos service.
func NewUploadHandler(logos *service.LogosService, logger *zap.Logger) *UploadHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadHandler{logos: logos, logger: logger}
}

// UploadLogo handles POST /api/upload-logo requests.
func (h *UploadHandler) UploadLogo(c echo.Context) error {
	var payload dto.UploadLogoRequest
	if err := c.Bind(&payload); err != nil {
		return Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	url, err := h.logos.Upload(c.Request().Context(), payload.Filename, payload.Data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadFieldsMissing):
			return Error(c, http.StatusBadRequest, "missing filename or data (base64)")
		case errors.Is(err, service.ErrFileTooLarge):
			return Error(c, http.StatusBadRequest, "file too large (max 2MB)")
		case errors.Is(err, service.ErrInvalidFileData):
			return Error(c, http.StatusBadRequest, "data must be base64 encoded")
		default:
			h.logger.Error("upload logo failed", zap.Error(err))
			return Error(c, http.StatusInternalServerError, "failed to store logo")
		}
	}

	return Success(c, http.StatusOK, "logo stored", map[string]any{"url": url})
}
