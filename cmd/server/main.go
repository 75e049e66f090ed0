// Package main is the entry point for the lechem API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/domain/auth"
	"github.com/sbolivar95/lechem-backend/internal/domain/category"
	"github.com/sbolivar95/lechem-backend/internal/domain/employee"
	"github.com/sbolivar95/lechem-backend/internal/domain/item"
	"github.com/sbolivar95/lechem-backend/internal/domain/order"
	"github.com/sbolivar95/lechem-backend/internal/domain/product"
	"github.com/sbolivar95/lechem-backend/internal/domain/recipe"
	"github.com/sbolivar95/lechem-backend/internal/domain/saleproduct"
	v1 "github.com/sbolivar95/lechem-backend/internal/infrastructure/http/v1"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres/auth_repo"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres/catalog_repo"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres/order_repo"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres/product_repo"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres/recipe_repo"
	"github.com/sbolivar95/lechem-backend/pkg/logger"
	"github.com/sbolivar95/lechem-backend/pkg/numerator"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting lechem server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Repositories ---
	authRepo := auth_repo.NewAuthRepo(txManager)
	employeeRepo := auth_repo.NewEmployeeRepo(txManager)
	categoryRepo := catalog_repo.NewCategoryRepo(txManager)
	itemRepo := catalog_repo.NewItemRepo(txManager)
	saleProductRepo := catalog_repo.NewSaleProductRepo(txManager)
	recipeRepo := recipe_repo.NewRecipeRepo(txManager)
	productRepo := product_repo.NewProductRepo(txManager)
	orderRepo := order_repo.NewOrderRepo(txManager)

	// --- Services ---
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(mustEnv("JWT_SECRET")))
	authService := auth.NewService(authRepo, txManager, jwtService, auth.DefaultServiceConfig())
	employeeService := employee.NewService(employeeRepo, authRepo, txManager)
	categoryService := category.NewService(categoryRepo)
	itemService := item.NewService(itemRepo, txManager)
	saleProductService := saleproduct.NewService(saleProductRepo)
	recipeService := recipe.NewService(recipeRepo, txManager)
	productService := product.NewService(productRepo, txManager)
	orderNumberer := numerator.New(txManager, numerator.DefaultConfig("ORD"))
	orderService := order.NewService(orderRepo, orderNumberer, txManager)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:               pool,
		Logger:             log,
		JWTValidator:       jwtService,
		AuthService:        authService,
		CategoryService:    categoryService,
		ItemService:        itemService,
		RecipeService:      recipeService,
		ProductService:     productService,
		SaleProductService: saleProductService,
		OrderService:       orderService,
		EmployeeService:    employeeService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
