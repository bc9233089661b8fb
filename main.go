// File: shortlet/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shortlet/backend"
	"shortlet/config"
	"shortlet/handlers"
	"shortlet/middleware"
	"shortlet/models"
	"shortlet/routes"
	"shortlet/services/catalog"
	"shortlet/services/reservation"
	"shortlet/services/review"
	"shortlet/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Backend API client.
	apiClient := backend.NewClient(config.AppConfig.BackendBaseURL, config.AppConfig.BackendTimeout, logger)

	// Services.
	catalogService := &catalog.DefaultCatalogService{
		API:    apiClient,
		Cache:  utils.GetCatalogCacheClient(),
		Logger: logger,
	}
	reviewService := &review.DefaultReviewService{API: apiClient}

	dispatcher := &reservation.PaymentDispatcher{
		API:           apiClient,
		Logger:        logger,
		BookingsRoute: config.AppConfig.BookingsRoute,
		FallbackBank: models.BankDetails{
			AccountName:   config.AppConfig.BankFallbackName,
			AccountNumber: config.AppConfig.BankFallbackAccount,
			BankName:      config.AppConfig.BankFallbackBank,
		},
	}
	reservationService := &reservation.DefaultReservationService{
		Store:      reservation.NewRedisSessionStore(utils.GetSessionClient()),
		API:        apiClient,
		Checker:    reservation.NewAvailabilityChecker(apiClient, logger),
		Dispatcher: dispatcher,
		Logger:     logger,
	}

	// Handlers.
	handlerBundle := &routes.HandlerBundle{
		Catalog:     handlers.NewCatalogHandler(catalogService),
		Reservation: handlers.NewReservationHandler(reservationService, logger),
		Review:      handlers.NewReviewHandler(reviewService),
		Storage:     handlers.NewStorageHandler(storageService, apiClient),
	}

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
