package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/octobees/linecard/api/internal/config"
	"github.com/octobees/linecard/api/internal/database"
	"github.com/octobees/linecard/api/internal/handler"
	"github.com/octobees/linecard/api/internal/llm"
	middlewarepkg "github.com/octobees/linecard/api/internal/middleware"
	"github.com/octobees/linecard/api/internal/repository"
	"github.com/octobees/linecard/api/internal/router"
	"github.com/octobees/linecard/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	vendorsRepo := repository.NewPGXVendorsRepository(pool)
	logosRepo := repository.NewPGXLogosRepository(pool)

	httpClient := &http.Client{Timeout: 30 * time.Second}
	chatClient := llm.NewClient(httpClient, cfg.OpenAIEndpoint, cfg.OpenAIKey, cfg.OpenAIDeployment)

	vendorsService := service.NewVendorsService(vendorsRepo)
	logosService := service.NewLogosService(logosRepo, cfg.PublicBaseURL)
	enrichService := service.NewEnrichmentService(chatClient, cfg, logger)

	handlers := router.Handlers{
		Vendors: handler.NewVendorsHandler(vendorsService, logger),
		Enrich:  handler.NewEnrichHandler(enrichService, logger),
		Upload:  handler.NewUploadHandler(logosService, logger),
		Logos:   handler.NewLogosHandler(logosService, logger),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logger))
	e.Use(echoMiddleware.Recover())
	e.Use(middlewarepkg.Principal(logger))

	router.Register(e, cfg, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
