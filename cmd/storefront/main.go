package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/polygondevindia-tech/board-build-boutique/internal/auth"
	"github.com/polygondevindia-tech/board-build-boutique/internal/cart"
	"github.com/polygondevindia-tech/board-build-boutique/internal/catalog"
	"github.com/polygondevindia-tech/board-build-boutique/internal/config"
	"github.com/polygondevindia-tech/board-build-boutique/internal/db"
	"github.com/polygondevindia-tech/board-build-boutique/internal/events"
	"github.com/polygondevindia-tech/board-build-boutique/internal/httpapi"
	"github.com/polygondevindia-tech/board-build-boutique/internal/order"
	"github.com/polygondevindia-tech/board-build-boutique/internal/quote"
)

func main() {
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	cfg := config.Load()
	if cfg.DSN == "" {
		logger.Fatal("STOREFRONT_DB_DSN not set")
	}

	if err := db.RunMigrations(cfg.DSN, logger); err != nil {
		logger.Fatalf("run migrations: %v", err)
	}

	database, err := db.Open(cfg.DSN)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer database.Close()

	pool, err := db.OpenPool(context.Background(), cfg.DSN)
	if err != nil {
		logger.Fatalf("open pgx pool: %v", err)
	}
	defer pool.Close()

	rabbitConn := events.MustDialRabbit()
	defer rabbitConn.Close()

	sequenceRepo := events.NewSequenceRepository(database)
	publisher, err := events.NewPublisher(rabbitConn, sequenceRepo)
	if err != nil {
		logger.Fatalf("create event publisher: %v", err)
	}

	catalogRepo := catalog.NewPostgresRepository(pool)
	catalogSvc := catalog.NewService(catalogRepo)
	orderRepo := order.NewRepository(database)
	quoteRepo := quote.NewRepository(database)
	roles := auth.NewSQLRoles(database)

	policy := cart.Policy{ShippingFlat: cfg.ShippingFlat, TaxRate: cfg.TaxRate}
	carts := cart.NewManager(func(key string) cart.Persister {
		return cart.NewBackgroundPersister(cart.NewSQLPersister(database, key), logger)
	}, logger)

	orderSvc := order.NewService(orderRepo, publisher, policy)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Cart:             httpapi.NewCartHandler(carts, catalogRepo, policy, orderSvc, logger),
		Catalog:          httpapi.NewCatalogHandler(catalogRepo, catalogSvc, logger),
		Orders:           httpapi.NewOrderHandler(orderRepo, logger),
		Quotes:           httpapi.NewQuoteHandler(quoteRepo, publisher, logger),
		Roles:            roles,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		Logger:           logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("storefront listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
	if err := carts.Close(); err != nil {
		logger.Printf("cart manager close error: %v", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Printf("publisher close error: %v", err)
	}
}
