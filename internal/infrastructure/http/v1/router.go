// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/sbolivar95/lechem-backend/internal/core/security"
	"github.com/sbolivar95/lechem-backend/internal/domain/auth"
	"github.com/sbolivar95/lechem-backend/internal/domain/category"
	"github.com/sbolivar95/lechem-backend/internal/domain/employee"
	"github.com/sbolivar95/lechem-backend/internal/domain/item"
	"github.com/sbolivar95/lechem-backend/internal/domain/order"
	"github.com/sbolivar95/lechem-backend/internal/domain/product"
	"github.com/sbolivar95/lechem-backend/internal/domain/recipe"
	"github.com/sbolivar95/lechem-backend/internal/domain/saleproduct"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/http/v1/handlers"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/http/v1/middleware"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres"
	"github.com/sbolivar95/lechem-backend/pkg/logger"
)

// RouterConfig holds everything the router wires together.
type RouterConfig struct {
	Pool         *postgres.Pool
	Logger       *logger.Logger
	JWTValidator middleware.JWTValidator

	AuthService        *auth.Service
	CategoryService    *category.Service
	ItemService        *item.Service
	RecipeService      *recipe.Service
	ProductService     *product.Service
	SaleProductService *saleproduct.Service
	OrderService       *order.Service
	EmployeeService    *employee.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware, order matters.
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	base := handlers.NewBaseHandler()

	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)

			authed := authGroup.Group("")
			authed.Use(middleware.Auth(cfg.JWTValidator))
			{
				authed.GET("/me", authHandler.Me)
				authed.GET("/organizations", authHandler.Organizations)
			}
		}

		// Everything under /orgs/:orgId requires a token whose active org
		// matches the path.
		org := apiV1.Group("/orgs/:orgId")
		org.Use(middleware.Auth(cfg.JWTValidator))
		org.Use(middleware.OrgGuard())

		manage := middleware.RequireRole(security.RoleOwner, security.RoleAdmin)

		categoryHandler := handlers.NewCategoryHandler(base, cfg.CategoryService)
		categories := org.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.POST("", manage, categoryHandler.Create)
			categories.PATCH("/:id", manage, categoryHandler.Update)
			categories.DELETE("/:id", manage, categoryHandler.Delete)
		}

		itemHandler := handlers.NewItemHandler(base, cfg.ItemService)
		org.GET("/units", itemHandler.ListUnits)
		items := org.Group("/items")
		{
			items.GET("", itemHandler.List)
			items.GET("/:id", itemHandler.Get)
			items.POST("", manage, itemHandler.Create)
			items.PATCH("/:id", manage, itemHandler.Update)
			items.DELETE("/:id", manage, itemHandler.Delete)
		}

		recipeHandler := handlers.NewRecipeHandler(base, cfg.RecipeService)
		recipes := org.Group("/recipes")
		{
			recipes.GET("", recipeHandler.List)
			recipes.GET("/:id", recipeHandler.Get)
			recipes.GET("/:id/cost", recipeHandler.Cost)
			recipes.GET("/:id/items", recipeHandler.ListLines)
			recipes.POST("", manage, recipeHandler.Create)
			recipes.PATCH("/:id", manage, recipeHandler.Update)
			recipes.DELETE("/:id", manage, recipeHandler.Delete)
			recipes.PUT("/:id/items/:itemId", manage, recipeHandler.UpsertLine)
			recipes.DELETE("/:id/items/:itemId", manage, recipeHandler.DeleteLine)
		}

		productHandler := handlers.NewProductHandler(base, cfg.ProductService)
		products := org.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.GET("/:id/cost", productHandler.Cost)
			products.POST("", manage, productHandler.Create)
			products.PATCH("/:id", manage, productHandler.Update)
			products.DELETE("/:id", manage, productHandler.Delete)
			products.DELETE("/:id/recipes/:recipeId", manage, productHandler.DeleteRecipeLine)
			products.DELETE("/:id/items/:itemId", manage, productHandler.DeleteItemLine)
		}

		saleProductHandler := handlers.NewSaleProductHandler(base, cfg.SaleProductService)
		saleProducts := org.Group("/sale-products")
		{
			saleProducts.GET("", saleProductHandler.List)
			saleProducts.GET("/:id", saleProductHandler.Get)
			saleProducts.POST("", manage, saleProductHandler.Create)
			saleProducts.PATCH("/:id", manage, saleProductHandler.Update)
			saleProducts.DELETE("/:id", manage, saleProductHandler.Delete)
		}

		orderHandler := handlers.NewOrderHandler(base, cfg.OrderService)
		orders := org.Group("/orders")
		{
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.POST("", orderHandler.Create)
			orders.PATCH("/:id/status", manage, orderHandler.UpdateStatus)
			orders.DELETE("/:id", manage, orderHandler.Delete)
		}

		employeeHandler := handlers.NewEmployeeHandler(base, cfg.EmployeeService)
		employees := org.Group("/employees")
		employees.Use(manage)
		{
			employees.GET("", employeeHandler.List)
			employees.GET("/:id", employeeHandler.Get)
			employees.POST("", employeeHandler.Create)
			employees.PATCH("/:id", employeeHandler.Update)
			employees.DELETE("/:id", employeeHandler.Delete)
		}
	}

	return router
}
