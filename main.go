package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopbasket/backend/internal/config"
	httpapi "github.com/shopbasket/backend/internal/delivery/http"
	"github.com/shopbasket/backend/internal/importer"
	"github.com/shopbasket/backend/internal/messaging"
	"github.com/shopbasket/backend/internal/messaging/kafka"
	"github.com/shopbasket/backend/internal/repository/memory"
	"github.com/shopbasket/backend/internal/service"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg := config.Load()

	// --- Stock catalog ---
	items, err := importer.New(cfg.StockFile).Import()
	if err != nil {
		slog.Error("Failed to import stock catalog", "file", cfg.StockFile, "err", err)
		os.Exit(1)
	}
	slog.Info("Stock catalog imported", "file", cfg.StockFile, "items", len(items))

	ledger := memory.NewStockLedger(items)
	baskets := memory.NewBasketStore()

	// --- Messaging ---
	var publisher messaging.Publisher = messaging.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(cfg.KafkaBrokers)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		slog.Info("Kafka publisher configured", "brokers", cfg.KafkaBrokers)
	}

	// --- HTTP API ---
	basketSvc := service.NewBasketService(ledger, baskets, publisher)

	mux := http.NewServeMux()
	httpapi.NewHandler(basketSvc).RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.EnableCORS(mux),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		slog.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")
	httpServer.Shutdown(context.Background())
}
