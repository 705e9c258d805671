// File: barberbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	barberRepo "barberbook/database/repository/barber"
	bookingRepo "barberbook/database/repository/booking"
	serviceRepo "barberbook/database/repository/service"
	userRepoPkg "barberbook/database/repository/user"
	"barberbook/database/seed"
	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/routes"
	"barberbook/services/scheduling"
	"barberbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Bootstrap demo data once; after this the database is the only source
	// of truth.
	if err := seed.Run(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed database: %v", err)
	}

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	barbers := barberRepo.NewMongoBarberRepo()
	services := serviceRepo.NewMongoServiceRepo()
	users := userRepoPkg.NewMongoUserRepo()

	// reminder queue.
	reminderLead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	reminders := cron.NewAsynqReminderScheduler(reminderLead)
	cron.InitReminderWorker()

	// scheduling core.
	schedulerService := &scheduling.DefaultSchedulingService{
		Bookings:        bookings,
		Barbers:         barbers,
		Services:        services,
		Users:           users,
		Locker:          &scheduling.RedisSlotLocker{Client: utils.GetCacheClient()},
		Reminders:       reminders,
		DefaultTimezone: config.AppConfig.DefaultTimezone,
	}

	// lifecycle reconciler.
	reconcilerCtx, stopReconciler := context.WithCancel(context.Background())
	reconcileInterval := time.Duration(config.AppConfig.ReconcileIntervalSeconds) * time.Second
	go cron.StartBookingReconciler(reconcilerCtx, bookings, reconcileInterval)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(schedulerService),
		Booking:      handlers.NewBookingHandler(schedulerService),
		Barber:       handlers.NewBarberHandler(barbers),
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

	stopReconciler()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
