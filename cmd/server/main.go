package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdv/internal/auth"
	"pdv/internal/client"
	clientrepo "pdv/internal/client/repository"
	"pdv/internal/config"
	"pdv/internal/domain"
	"pdv/internal/infrastructure/filestore"
	"pdv/internal/infrastructure/logger"
	"pdv/internal/infrastructure/mysql"
	"pdv/internal/infrastructure/rabbitmq"
	redisinfra "pdv/internal/infrastructure/redis"
	"pdv/internal/messaging"
	"pdv/internal/persistence"
	"pdv/internal/product"
	productrepo "pdv/internal/product/repository"
	"pdv/internal/sale"
	salerepo "pdv/internal/sale/repository"
	"pdv/internal/server"
	pdvmw "pdv/internal/server/middleware"
	"pdv/internal/web"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		zapLogger.Fatal("opening storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closeStore()
	zapLogger.Info("storage ready", zap.String("driver", cfg.Storage.Driver))

	products, err := persistence.Load[domain.Product](ctx, store, persistence.Products)
	if err != nil {
		zapLogger.Fatal("loading products", zap.Error(err))
	}
	clients, err := persistence.Load[domain.Client](ctx, store, persistence.Clients)
	if err != nil {
		zapLogger.Fatal("loading clients", zap.Error(err))
	}
	sales, err := persistence.Load[domain.Sale](ctx, store, persistence.Sales)
	if err != nil {
		zapLogger.Fatal("loading sales", zap.Error(err))
	}
	zapLogger.Info("data loaded",
		zap.Int("products", len(products)),
		zap.Int("clients", len(clients)),
		zap.Int("sales", len(sales)),
	)

	catalog := productrepo.NewCatalogRepository(products)
	clientRepo := clientrepo.NewClientRepository(clients)
	ledger := salerepo.NewLedgerRepository(sales)
	syncer := persistence.NewSyncer(store, zapLogger,
		persistence.Collection{Name: persistence.Products, Snapshot: catalog.Snapshot},
		persistence.Collection{Name: persistence.Clients, Snapshot: clientRepo.Snapshot},
		persistence.Collection{Name: persistence.Sales, Snapshot: ledger.Snapshot},
	)

	publisher, closePublisher := openPublisher(cfg, zapLogger)
	defer closePublisher()

	idempotency, closeIdempotency := openIdempotency(ctx, cfg, zapLogger)
	defer closeIdempotency()

	validator := web.NewValidator()
	tokens := auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	router := server.NewRouter(server.Handlers{
		Auth:     auth.NewController(auth.DirectoryFromConfig(cfg.Auth.Operator), tokens, zapLogger),
		Products: product.NewModule(catalog, syncer, validator, zapLogger),
		Clients:  client.NewModule(clientRepo, syncer, validator, zapLogger),
		Sales:    sale.NewModule(catalog, ledger, syncer, publisher, validator, cfg.Sale, zapLogger),
	}, server.RouterConfig{
		Verifier:    tokens,
		CORSOrigins: cfg.Server.CORSOrigins,
		Idempotency: idempotency,
	}, zapLogger)

	srv := server.New(cfg.Server.Host, cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func openStore(ctx context.Context, cfg *config.Config) (persistence.DocumentStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMySQL:
		db, err := mysql.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		store := mysql.NewDocumentStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil
	case config.StorageFile:
		store, err := filestore.NewJSONStore(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// openPublisher falls back to a no-op publisher when the broker is not
// configured or unreachable.
func openPublisher(cfg *config.Config, zapLogger *zap.Logger) (messaging.Publisher, func()) {
	if cfg.RabbitMQ.URL == "" {
		return messaging.NopPublisher{}, func() {}
	}

	conn, ch, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
	if err != nil {
		zapLogger.Warn("rabbitmq unavailable, sale events disabled", zap.Error(err))
		return messaging.NopPublisher{}, func() {}
	}
	zapLogger.Info("rabbitmq connected", zap.String("exchange", cfg.RabbitMQ.Exchange))

	return rabbitmq.NewPublisher(ch, cfg.RabbitMQ.Exchange), func() {
		ch.Close()
		conn.Close()
	}
}

// openIdempotency returns nil when Redis is not configured or unreachable.
func openIdempotency(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (func(http.Handler) http.Handler, func()) {
	if cfg.Redis.Addr == "" {
		return nil, func() {}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	client, err := redisinfra.NewClient(pingCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		zapLogger.Warn("redis unavailable, idempotency disabled", zap.Error(err))
		return nil, func() {}
	}
	zapLogger.Info("redis connected", zap.String("addr", cfg.Redis.Addr))

	store := redisinfra.NewIdempotencyStore(client)
	return pdvmw.Idempotency(store, cfg.Redis.IdempotencyTTL, zapLogger), func() { client.Close() }
}
