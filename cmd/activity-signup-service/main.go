// Package main запускает HTTP-сервис записи студентов на внеклассные занятия
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activity-signup-service/internal/config"
	httpapi "activity-signup-service/internal/http"
	"activity-signup-service/internal/observability"
	"activity-signup-service/internal/repository"
	"activity-signup-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	// 1. Каталог занятий живёт в памяти процесса
	directory := repository.NewSeededDirectory()

	// 2. Метрики
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	prometheus.MustRegister(observability.NewRosterCollector(directory))

	// 3. Сервис
	activityService := service.NewActivityService(directory, metrics, logger)

	// 4. HTTP-обработчик
	handler := httpapi.NewHandler(activityService, logger, httpapi.Config{
		StaticDir:      cfg.StaticDir,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Metrics:        promhttp.Handler(),
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddress,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr), slog.Int("activities", len(repository.SeedCatalog())))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
