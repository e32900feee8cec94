package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"burger-api/internal/config"
	"burger-api/internal/handlers"
	"burger-api/internal/middleware"
	"burger-api/internal/repository"
	"burger-api/internal/service"
	"burger-api/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting burger ordering api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize the catalog store: Mongo when configured, in-memory otherwise
	catalog, closeStore, err := newCatalog(cfg, log)
	if err != nil {
		log.Error("failed to initialize catalog store", "error", err)
		os.Exit(1)
	}

	// Initialize services
	orderService := service.NewOrderService(catalog, log)
	catalogService := service.NewCatalogService(catalog, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	catalogHandler := handlers.NewCatalogHandler(catalogService, log)
	offerHandler := handlers.NewOfferHandler(catalogService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog reads
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{productId}", catalogHandler.GetProduct)
		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/categories/{categoryId}", catalogHandler.GetCategory)
		r.Get("/menus", catalogHandler.ListMenus)
		r.Get("/menus/{menuId}", catalogHandler.GetMenu)

		// Orders
		r.Post("/orders", orderHandler.CreateOrder)
		r.Get("/orders/pending", orderHandler.ListPending)
		r.Get("/orders/completed", orderHandler.ListCompleted)
		r.Get("/orders/{orderId}", orderHandler.GetOrder)
		r.Post("/orders/{orderId}/complete", orderHandler.CompleteOrder)
		r.Delete("/orders/{orderId}", orderHandler.DeleteOrder)

		// Catalog administration (membership and promotions)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.Auth))
			r.Post("/categories/{categoryId}/products", catalogHandler.AddProductsToCategory)
			r.Delete("/categories/{categoryId}/products/{productId}", catalogHandler.RemoveProductFromCategory)
			r.Post("/menus/{menuId}/categories", catalogHandler.AddCategoriesToMenu)
			r.Delete("/menus/{menuId}/categories/{categoryId}", catalogHandler.RemoveCategoryFromMenu)
			r.Put("/products/{productId}/offer", offerHandler.SetProductOffer)
			r.Put("/menus/{menuId}/offer", offerHandler.SetMenuOffer)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if err := closeStore(ctx); err != nil {
		log.Error("failed to close catalog store", "error", err)
	}

	log.Info("server stopped gracefully")
}

// newCatalog selects the catalog store implementation. A configured Mongo
// URI gets a pinged connection; otherwise the server runs on the in-memory
// catalog, which is meant for development only.
func newCatalog(cfg *config.Config, log *slog.Logger) (repository.Catalog, func(context.Context) error, error) {
	if cfg.Mongo.URI == "" {
		log.Warn("no MONGO_URI configured, using in-memory catalog store")
		return repository.NewMemoryCatalog(), func(context.Context) error { return nil }, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Mongo.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Info("connected to mongo", "database", cfg.Mongo.Database)
	return repository.NewMongoCatalog(client.Database(cfg.Mongo.Database)), client.Disconnect, nil
}
