package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"biketours-backend/config"
	"biketours-backend/controllers"
	"biketours-backend/routes"
	"biketours-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("ERROR: JWT_SECRET environment variable is not set.")
	}

	// Connect database (config.ConnectDatabase sets config.DB, migrates, seeds)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied.")

	// Initialize services
	tourService := services.NewTourService(db)
	slotService := services.NewSlotService(db)
	reservationService := services.NewReservationService(db)
	reviewService := services.NewReviewService(db)
	rentalService := services.NewRentalService(db)
	bikeService := services.NewBikeService(db)
	locationService := services.NewLocationService(db)
	guideService := services.NewGuideService(db)
	maintenanceService := services.NewMaintenanceService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	tourController := controllers.NewTourController(tourService, reviewService)
	slotController := controllers.NewSlotController(slotService)
	bookingController := controllers.NewBookingController(reservationService)
	reviewController := controllers.NewReviewController(reviewService)
	rentalController := controllers.NewRentalController(rentalService)
	bikeController := controllers.NewBikeController(bikeService)
	locationController := controllers.NewLocationController(locationService)
	guideController := controllers.NewGuideController(guideService)

	// Daily catalog maintenance
	scheduler := maintenanceService.StartScheduler()
	defer scheduler.Stop()
	if os.Getenv("RUN_MAINTENANCE_ON_BOOT") == "true" {
		maintenanceService.RunDaily()
	}

	// Build router
	router := routes.SetupRouter(
		authController,
		tourController,
		slotController,
		bookingController,
		reviewController,
		rentalController,
		bikeController,
		locationController,
		guideController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
