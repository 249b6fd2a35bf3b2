// File: voyago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/database"
	"voyago/database/repository"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	authSvc "voyago/services/auth"
	bookingSvc "voyago/services/booking"
	catalogSvc "voyago/services/catalog"
	profileSvc "voyago/services/profile"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()

	store, err := database.NewStore(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize key-value store: %v", err)
	}
	defer store.Close(ctx)

	authProvider, err := authSvc.NewProvider(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize auth provider: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profileRepo := repository.NewKVProfileRepo(store)
	destinationRepo := repository.NewKVDestinationRepo(store)
	bookingRepo := repository.NewKVBookingRepo(store)

	// services.
	profileService := &profileSvc.DefaultProfileService{
		Repo:          profileRepo,
		Provisioner:   authProvider,
		AdminEmail:    config.AppConfig.AdminEmail,
		AdminName:     config.AppConfig.AdminName,
		AdminPassword: config.AppConfig.AdminPassword,
	}
	catalogService := &catalogSvc.DefaultCatalogService{
		Repo: destinationRepo,
	}
	bookingService := &bookingSvc.DefaultBookingService{
		Repo: bookingRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Verifier:       authProvider,
		ProfileService: profileService,

		Profile:     handlers.NewProfileHandler(profileService),
		Destination: handlers.NewDestinationHandler(catalogService),
		Booking:     handlers.NewBookingHandler(bookingService),
		Admin:       handlers.NewAdminHandler(profileService),
		Setup:       handlers.NewSetupHandler(profileService, catalogService),
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
