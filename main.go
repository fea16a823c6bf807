// File: callsmith/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"callsmith/config"
	"callsmith/handlers"
	"callsmith/middleware"
	"callsmith/routes"
	"callsmith/services/appointment"
	"callsmith/services/planner"
	"callsmith/services/telephony"
	"callsmith/utils"

	"github.com/gin-contrib/cors"
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

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsCfg))

	// Collaborators: prefer the live backends, fall back to the local planner
	// and simulated telephony when credentials are not configured.
	var callPlanner planner.CallPlanner
	if config.AppConfig.GeminiAPIKey != "" {
		geminiPlanner, err := planner.NewGeminiPlanner(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize gemini planner: %v", err)
		}
		callPlanner = geminiPlanner
	} else {
		logger.Sugar().Warn("main: GEMINI_API_KEY not set, using the local template planner")
		callPlanner = planner.NewLocalPlanner()
	}

	var callProvider telephony.CallProvider
	if config.AppConfig.VoiceGatewayURL != "" {
		callProvider = telephony.NewVoiceGatewayProvider(
			config.AppConfig.VoiceGatewayURL,
			config.AppConfig.VoiceGatewayToken,
			config.AppConfig.CallerID,
		)
	} else {
		logger.Sugar().Warn("main: VOICE_GATEWAY_URL not set, calls will be simulated")
		callProvider = telephony.NewSimulatedProvider()
	}

	// services.
	appointmentService := &appointment.DefaultAppointmentService{
		Planner:   callPlanner,
		Telephony: callProvider,
		Logger:    logger,
	}
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, logger)

	// Register routes.
	routes.RegisterRoutes(router, appointmentHandler)

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
