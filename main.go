// File: suitpax/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"suitpax/config"
	"suitpax/handlers"
	"suitpax/middleware"
	"suitpax/routes"
	"suitpax/services/assistant"
	"suitpax/services/document"
	"suitpax/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Model invoker. An empty GEMINI_API_KEY yields a disabled invoker and the
	// service answers every request from the fallback responder.
	invoker, err := assistant.NewGeminiInvoker(context.Background(),
		config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Warnf("main: model invoker unavailable, falling back to offline replies: %v", err)
		invoker = &assistant.GeminiInvoker{}
	}
	if !invoker.Enabled() {
		logger.Sugar().Info("main: no Gemini credential configured, offline replies only")
	}

	// Services.
	assistantService := assistant.NewDefaultAssistantService(
		invoker,
		assistant.GenerationLimits{
			FreeMaxTokens:   int32(config.AppConfig.AIMaxTokensFree),
			ProMaxTokens:    int32(config.AppConfig.AIMaxTokensPro),
			FreeTemperature: float32(config.AppConfig.AITemperatureFree),
			ProTemperature:  float32(config.AppConfig.AITemperaturePro),
		},
		config.AppConfig.AIMaxMessageLength,
	)
	extractor := document.NewStubExtractor()

	// Handlers.
	chatHandler := handlers.NewChatHandler(assistantService)
	documentHandler := handlers.NewDocumentHandler(extractor)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:            chatHandler.HandleChat,
		GetFlightsHandler:      handlers.GetFlightsHandler,
		GetHotelsHandler:       handlers.GetHotelsHandler,
		GetCitiesHandler:       handlers.GetCitiesHandler,
		ExtractDocumentHandler: documentHandler.ExtractHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
