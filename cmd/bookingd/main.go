package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"venue-booking-backend/config"
	"venue-booking-backend/internal/api"
	"venue-booking-backend/internal/db"
	"venue-booking-backend/internal/notice"
	"venue-booking-backend/internal/reminder"
	"venue-booking-backend/internal/session"
	"venue-booking-backend/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "booking-backend ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
		logger.Println("VAPID keys are not configured; reminders will use the notice feed only")
	}

	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)
	logger.Println("booking store initialized")

	feed := notice.NewFeed(50)
	pool := reminder.NewPool(cfg.WorkerPool.Size, gormDB, &webpushOptions, feed)
	scheduler, err := reminder.NewScheduler(&cfg.Reminder, appStore, pool)
	if err != nil {
		logger.Fatalf("failed to initialize reminder scheduler: %v", err)
	}
	scheduler.Start(ctx)

	loc, err := time.LoadLocation(cfg.Reminder.Timezone)
	if err != nil {
		logger.Fatalf("invalid timezone %q: %v", cfg.Reminder.Timezone, err)
	}

	formSession := session.New()
	handler := api.NewHandler(
		appStore,
		formSession,
		scheduler,
		feed,
		&webpushOptions,
		loc,
		time.Duration(cfg.Booking.SaveLatencyMillis)*time.Millisecond,
	)

	router := api.NewRouter(handler, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}
	scheduler.Stop()

	logger.Println("Server gracefully stopped")
}
