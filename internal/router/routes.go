package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/linecard/api/internal/config"
	"github.com/octobees/linecard/api/internal/handler"
	middlewarepkg "github.com/octobees/linecard/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Vendors *handler.VendorsHandler
	Enrich  *handler.EnrichHandler
	Upload  *handler.UploadHandler
	Logos   *handler.LogosHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	// Public read paths: the line card grid and the logo blobs behind it.
	e.GET("/api/linecard", handlers.Vendors.List)
	e.GET("/logos/:name", handlers.Logos.Serve)

	admin := e.Group("/api", middlewarepkg.RequireAdmin(cfg.AdminEmails))
	admin.POST("/vendor", handlers.Vendors.Create)
	admin.DELETE("/vendor", handlers.Vendors.Delete)
	admin.POST("/upload-logo", handlers.Upload.UploadLogo)

	enrichLimiter := middlewarepkg.EnrichRateLimiter(cfg.RateLimitEnrich)
	admin.GET("/enrich", handlers.Enrich.Enrich, enrichLimiter)
	admin.POST("/enrich", handlers.Enrich.Enrich, enrichLimiter)
}
