package main

import (
	"log"
	"strings"
	"time"

	"pos_api/internal/config"
	"pos_api/internal/database"
	"pos_api/internal/handlers"
	"pos_api/internal/middleware"
	"pos_api/internal/redis"
	"pos_api/internal/repository"
	"pos_api/internal/services"
	"pos_api/pkg/receipt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Seed the initial admin account
	if err := database.SeedAdmin(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	// Initialize Redis; the API runs without it, with caching disabled
	var cache services.CatalogCache
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Redis unavailable, catalog cache disabled: %v", err)
	} else {
		cache = redisClient
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo, cache, cacheTTL)
	customerService := services.NewCustomerService(customerRepo)
	voucherService := services.NewVoucherService(voucherRepo)
	orderService := services.NewOrderService(orderRepo, customerRepo, voucherRepo, cache)

	// Initialize handlers
	business := receipt.BusinessInfo{
		Name:    cfg.BusinessName,
		Address: cfg.BusinessAddress,
		Phone:   cfg.BusinessPhone,
	}
	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret, cfg.JWTExpirationHours)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	voucherHandler := handlers.NewVoucherHandler(voucherService)
	orderHandler := handlers.NewOrderHandler(orderService, business)

	// Setup routes
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	secret := cfg.JWTSecret
	api := router.Group("/api/v1")
	{
		// Auth
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register", middleware.Authorize(secret, "users:create"), authHandler.Register)

		// Staff account administration
		api.GET("/users", middleware.Authorize(secret, "users:read"), userHandler.List)
		api.PUT("/users/:id", middleware.Authorize(secret, "users:write"), userHandler.Update)
		api.DELETE("/users/:id", middleware.Authorize(secret, "users:write"), userHandler.Delete)

		// Public storefront catalog
		api.GET("/products", productHandler.List)
		api.GET("/products/low-stock", middleware.Authorize(secret, "products:read-internal"), productHandler.LowStock)
		api.GET("/products/:id", productHandler.Get)

		// Admin catalog management
		api.POST("/products", middleware.Authorize(secret, "products:write"), productHandler.Create)
		api.PUT("/products/:id", middleware.Authorize(secret, "products:write"), productHandler.Update)
		api.DELETE("/products/:id", middleware.Authorize(secret, "products:write"), productHandler.Delete)

		// Customer registry
		api.GET("/customers", middleware.Authorize(secret, "customers:manage"), customerHandler.List)
		api.GET("/customers/:id", middleware.Authorize(secret, "customers:manage"), customerHandler.Get)
		api.POST("/customers", middleware.Authorize(secret, "customers:manage"), customerHandler.Create)
		api.PUT("/customers/:id", middleware.Authorize(secret, "customers:manage"), customerHandler.Update)
		api.DELETE("/customers/:id", middleware.Authorize(secret, "customers:manage"), customerHandler.Delete)

		// Orders
		api.POST("/orders", middleware.Authorize(secret, "orders:create"), orderHandler.Create)
		api.GET("/orders", middleware.Authorize(secret, "orders:read"), orderHandler.List)
		api.GET("/orders/today", middleware.Authorize(secret, "orders:summary"), orderHandler.TodaySummary)
		api.GET("/orders/mine", middleware.Authorize(secret, "orders:read-own"), orderHandler.ListMine)
		api.GET("/orders/:id", middleware.Authorize(secret, "orders:read"), orderHandler.Get)
		api.GET("/orders/:id/receipt", middleware.Authorize(secret, "orders:receipt"), orderHandler.Receipt)

		// Voucher registry
		api.GET("/vouchers", middleware.Authorize(secret, "vouchers:read"), voucherHandler.List)
		api.GET("/vouchers/:id", middleware.Authorize(secret, "vouchers:read"), voucherHandler.Get)
		api.POST("/vouchers", middleware.Authorize(secret, "vouchers:write"), voucherHandler.Create)
		api.PUT("/vouchers/:id", middleware.Authorize(secret, "vouchers:write"), voucherHandler.Update)
		api.DELETE("/vouchers/:id", middleware.Authorize(secret, "vouchers:write"), voucherHandler.Delete)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
