// File: meetsched/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"meetsched/config"
	"meetsched/handlers"
	"meetsched/middleware"
	"meetsched/models"
	"meetsched/routes"
	"meetsched/services/schedule"
	"meetsched/store"
	"meetsched/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	window, err := workingDayWindow()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid working-day configuration: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Shared state.
	occupancyStore := store.NewInMemoryOccupancyStore()

	// services.
	schedulerService := &schedule.DefaultSchedulerService{
		Store:  occupancyStore,
		Window: window,
	}

	scheduleHandler := handlers.NewScheduleHandler(schedulerService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SaveSlotsHandler:    scheduleHandler.SaveSlotsHandler,
		SuggestHandler:      scheduleHandler.SuggestHandler,
		BookHandler:         scheduleHandler.BookHandler,
		CalendarHandler:     scheduleHandler.CalendarHandler,
		ListBookingsHandler: scheduleHandler.ListBookingsHandler,
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

	logger.Sugar().Infof("Starting server on %s (working day %s-%s)...",
		srv.Addr, config.AppConfig.DayStart, config.AppConfig.DayEnd)
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

// workingDayWindow builds the availability window from config.
func workingDayWindow() (models.Interval, error) {
	start, err := schedule.ToMinutes(config.AppConfig.DayStart)
	if err != nil {
		return models.Interval{}, fmt.Errorf("DAY_START: %w", err)
	}
	end, err := schedule.ToMinutes(config.AppConfig.DayEnd)
	if err != nil {
		return models.Interval{}, fmt.Errorf("DAY_END: %w", err)
	}
	if end < start {
		return models.Interval{}, fmt.Errorf("working day ends (%s) before it starts (%s)",
			config.AppConfig.DayEnd, config.AppConfig.DayStart)
	}
	return models.Interval{Start: start, End: end}, nil
}
