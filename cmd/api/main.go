// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/chat"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/infrastructure/database/redis"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/interfaces/http"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
	"github.com/your-org/storefront-backend/internal/pkg/logger"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg)
	appLog.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		appLog.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		appLog.Fatalf("Redis health check failed: %v", err)
	}

	kv := storage.NewRedisStore(redisClient.GetClient())

	// Load the product catalog, falling back to the embedded data when the
	// remote source is unavailable
	catalogService := catalog.NewService(cfg, appLog)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Catalog.FetchTimeout+5*time.Second)
	if err := catalogService.Load(loadCtx); err != nil {
		cancelLoad()
		appLog.Fatalf("Failed to load product catalog: %v", err)
	}
	cancelLoad()

	if catalogService.UsingFallback() {
		appLog.Warn("⚠️  Serving the embedded fallback catalog")
	}

	// Wire domain services
	cartStore := cart.NewStore(kv, catalogService, appLog)
	checkoutService := checkout.NewService(kv, cartStore, appLog)
	chatService := chat.NewService(cfg, appLog)
	pdfService := pdf.NewService(cfg)

	cartStore.Subscribe(func(snapshot cart.Snapshot) {
		appLog.WithField("session_id", snapshot.SessionID).
			WithField("item_count", snapshot.Totals.ItemCount).
			Debug("Cart updated")
	})

	appLog.Info("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, appLog, redisClient.GetClient(), &routes.Services{
		Catalog:  catalogService,
		Cart:     cartStore,
		Checkout: checkoutService,
		Chat:     chatService,
		PDF:      pdfService,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			appLog.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLog.Info("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLog.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	appLog.Info("✅ Server shutdown completed")
}
