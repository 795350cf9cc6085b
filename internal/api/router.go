package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopstack/storefront-api/internal/api/handler"
	"github.com/shopstack/storefront-api/internal/api/middleware"
	"github.com/shopstack/storefront-api/internal/core/ports"
	"github.com/shopstack/storefront-api/internal/core/service"
	"github.com/shopstack/storefront-api/internal/infrastructure/config"
	mongorepo "github.com/shopstack/storefront-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/shopstack/storefront-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	cfg *config.Config,
	db *mongo.Database,
	rdb *redis.Client,
	payments ports.PaymentProvider,
	images ports.ImageStore,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	productRepo := mongorepo.NewProductRepository(db)
	categoryRepo := mongorepo.NewCategoryRepository(db)
	orderRepo := mongorepo.NewOrderRepository(db)
	guard := redisinfra.NewConfirmationGuard(rdb)

	// --- Services ---
	userService := service.NewUserService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	productService := service.NewProductService(productRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	orderService := service.NewOrderService(orderRepo, userRepo, payments, guard, log)
	reportService := service.NewReportService(orderRepo, productRepo, log)

	// --- Handlers ---
	userHandler := handler.NewUserHandler(userService, log)
	productHandler := handler.NewProductHandler(productService, images, log)
	categoryHandler := handler.NewCategoryHandler(categoryService, log)
	orderHandler := handler.NewOrderHandler(orderService, log)
	adminHandler := handler.NewAdminHandler(reportService, log)
	healthHandler := handler.NewHealthHandler(db.Client(), rdb)

	auth := middleware.Auth(cfg.JWTSecret)
	admin := middleware.RequireAdmin()

	// --- Health and metrics (no auth required) ---
	e.GET("/health", healthHandler.Live)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Ready) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Static uploads ---
	e.Static("/uploads", cfg.Upload.Dir)

	apiGroup := e.Group("/api")

	// --- Users ---
	users := apiGroup.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("/profile", userHandler.Profile, auth)
	users.GET("", userHandler.List, auth, admin)
	users.GET("/:id", userHandler.Get, auth, admin)
	users.PUT("/:id", userHandler.Update, auth, admin)
	users.DELETE("/:id", userHandler.Delete, auth, admin)

	// --- Products ---
	products := apiGroup.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, auth, admin)
	products.PUT("/:id", productHandler.Update, auth, admin)
	products.DELETE("/:id", productHandler.Delete, auth, admin)

	// --- Categories ---
	categories := apiGroup.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)

	// --- Orders ---
	orders := apiGroup.Group("/orders", auth)
	orders.POST("", orderHandler.Create)
	orders.GET("/myorders", orderHandler.MyOrders)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id/pay", orderHandler.Pay)
	orders.GET("", orderHandler.ListAll, admin)
	orders.PUT("/:id/status", orderHandler.UpdateStatus, admin)

	// --- Admin ---
	adminGroup := apiGroup.Group("/admin", auth, admin)
	adminGroup.GET("/dashboard", adminHandler.Dashboard)

	return e
}
