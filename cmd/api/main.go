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

	"github.com/cmlabs-hris/hris-attendance-chart/internal/config"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/hris-attendance-chart/internal/handler/http"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/pkg/logger"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-attendance-chart/internal/service/attendance"
)

const appVersion = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, logger.Config{
		App:     "hris-attendance-chart",
		Version: appVersion,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var source attendance.RecordSource
	switch cfg.Chart.Source {
	case config.SourcePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			log.Error("Error connecting to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		source = postgresql.NewAttendanceRepository(db)
	default:
		source = fixtures.NewSampleSource()
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	chartService := attendanceService.NewAttendanceChartService(source, cfg.Chart.AverageScope, cfg.Chart.TeamConcurrency)
	chartHandler := appHTTP.NewAttendanceChartHandler(chartService)

	router := appHTTP.NewRouter(JWTService, chartHandler, appHTTP.RouterOptions{
		Logger:         log,
		AllowedOrigins: cfg.App.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown error", "error", err)
		}
	}()

	log.Info("Server running",
		slog.String("addr", fmt.Sprintf("http://localhost:%d", cfg.App.Port)),
		slog.String("source", cfg.Chart.Source),
		slog.String("average_scope", string(cfg.Chart.AverageScope)),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server error", "error", err)
		os.Exit(1)
	}
}
