// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/digibay/digibay-backend/internal/config"
	"github.com/digibay/digibay-backend/internal/handlers"
	"github.com/digibay/digibay-backend/internal/middleware"
	"github.com/digibay/digibay-backend/internal/services"
	"github.com/digibay/digibay-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	productService := services.NewProductService(db)
	orderService := services.NewOrderService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// User routes
		users := api.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.PUT("/profile", userHandler.UpdateProfile)
			users.GET("", middleware.AdminRequired(), userHandler.GetUsers)
			users.GET("/:id", middleware.AdminRequired(), userHandler.GetUserByID)
			users.DELETE("/:id", middleware.AdminRequired(), userHandler.DeleteUser)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)

			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", middleware.UploadRateLimit(), productHandler.CreateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.PUT("/approve/:id", middleware.AdminRequired(), productHandler.ApproveProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
				protected.GET("/my/products", productHandler.GetMyProducts)
				protected.GET("/pending", middleware.AdminRequired(), productHandler.GetPendingProducts)
			}
		}

		// Order routes
		orders := api.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", middleware.AdminRequired(), orderHandler.GetAllOrders)
			orders.GET("/my", orderHandler.GetMyOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/pay/:id", orderHandler.PayOrder)
		}
	}

	// Uploaded assets are served under the public uploads prefix when stored
	// locally.
	r.Static(cfg.Uploads.PublicURL, cfg.Uploads.Dir)

	return r, nil
}
