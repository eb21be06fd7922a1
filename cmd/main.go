package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/api"
	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/api/events"
	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/httpclients/s3"
	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/metrics"
	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/repository"
	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/service"
	"github.com/Qayoomitcourse/Airport-Pass-Management/pkg/broker"
	"github.com/Qayoomitcourse/Airport-Pass-Management/pkg/config"
	"github.com/Qayoomitcourse/Airport-Pass-Management/pkg/logger"
	"github.com/Qayoomitcourse/Airport-Pass-Management/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New()

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	s3Client, err := s3.NewClient(ctx, cfg.S3)
	panicOnErr("new s3 client", err)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.PassEventsTopic)
	defer producer.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	s := service.New(repo, s3Client, producer, metrics.New(registry), cfg.ExpiryWindow)

	// Kafka consumers
	{
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.PhotosTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.PhotosTopic, eventHandler.OnPhotoProcessed)
		consumer.Consume(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg)

	router := api.NewRouter(handler, mw, registry)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(cfg.ExpirySweepInterval)
		defer ticker.Stop()

		l := slog.Default().With("job", "sweep_expiring")
		for {
			l.Debug("job started")

			err := s.SweepExpiring(ctx)
			if err != nil {
				l.ErrorContext(ctx, fmt.Sprintf("job failed: %s", err))
			} else {
				l.DebugContext(ctx, "job finished")
			}

			select {
			case <-ctx.Done():
				l.DebugContext(ctx, "job stopped by ctx")
				return
			case <-ticker.C:
			}
		}
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
