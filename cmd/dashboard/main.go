package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/school-dashboard/internal/config"
	httptransport "github.com/example/school-dashboard/internal/http"
	"github.com/example/school-dashboard/internal/logging"
	"github.com/example/school-dashboard/internal/persistence/sqlite"
	"github.com/example/school-dashboard/internal/seed"
	"github.com/example/school-dashboard/internal/store"
)

func main() {
	logger := logging.New(os.Stdout, slog.LevelInfo)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is fine; the loader falls back to defaults.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	snapshots, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := snapshots.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := snapshots.Migrate(context.Background()); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	now := time.Now
	dataStore := store.Open(ctx, store.Options{
		Snapshots: snapshots,
		Seed:      seed.Dataset(now()),
		Now:       now,
		Billing: store.BillingDefaults{
			BlockSize:   cfg.LessonBlockSize,
			BlockAmount: cfg.LessonBlockAmount,
			MonthlyFee:  cfg.MonthlyFee,
		},
		Logger: logger,
	})

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Teachers:    httptransport.NewTeacherHandler(dataStore, logger),
		Groups:      httptransport.NewGroupHandler(dataStore, now, logger),
		Students:    httptransport.NewStudentHandler(dataStore, logger),
		Rooms:       httptransport.NewRoomHandler(dataStore, logger),
		Bookings:    httptransport.NewBookingHandler(dataStore, logger),
		Attendance:  httptransport.NewAttendanceHandler(dataStore, logger),
		Payments:    httptransport.NewPaymentHandler(dataStore, logger),
		Preferences: httptransport.NewPreferencesHandler(dataStore, logger),
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("dashboard API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}
