package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/harper-lane/storefront-api/config"
	"github.com/harper-lane/storefront-api/controllers"
	"github.com/harper-lane/storefront-api/middleware"
	"github.com/harper-lane/storefront-api/models"
	"github.com/harper-lane/storefront-api/services"
)

func main() {
	seed := flag.Bool("seed", false, "load demo catalog and admin account, then continue serving")
	flag.Parse()

	log.Println("Starting Storefront API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	if *seed {
		if err := config.SeedDatabase(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Product image storage is optional in development; uploads fall back to
	// an error response when no bucket is configured.
	if cfg.AWSS3Bucket != "" {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		services.InitImageService(s3Service)
	} else {
		log.Println("AWS_S3_BUCKET not set, image uploads disabled")
	}

	router := setupRouter(cfg)

	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the full route tree. Split out of main so acceptance
// tests can exercise the real application wiring.
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/signup", controllers.Signup)
			auth.POST("/login", controllers.Login)
			auth.GET("/me", middleware.RequireAuth(cfg), controllers.GetCurrentUser)
		}

		products := api.Group("/products")
		{
			products.GET("", controllers.GetProducts)
			products.GET("/featured", controllers.GetFeaturedProducts)
			products.GET("/slug/:slug", controllers.GetProductBySlug)
			products.GET("/:id", controllers.GetProductByID)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", controllers.GetCategories)
			categories.GET("/:slug", controllers.GetCategoryBySlug)
		}

		orders := api.Group("/orders", middleware.RequireAuth(cfg))
		{
			orders.POST("", controllers.CreateOrder)
			orders.GET("", controllers.GetMyOrders)
			orders.GET("/:id", controllers.GetOrderByID)
		}

		api.GET("/uploads/:filename", controllers.GetUploadedImage)

		admin := api.Group("/admin", middleware.RequireAuth(cfg), middleware.RequireAdmin())
		{
			admin.GET("/stats", controllers.GetDashboardStats)
			admin.POST("/products", controllers.CreateProduct)
			admin.PUT("/products/:id", controllers.UpdateProduct)
			admin.DELETE("/products/:id", controllers.DeleteProduct)
			admin.GET("/orders", controllers.GetAllOrders)
			admin.PATCH("/orders/:id", controllers.UpdateOrderStatus)
			admin.GET("/payments", controllers.GetAllPayments)
			admin.PATCH("/payments/:id", controllers.UpdatePaymentStatus)
			admin.POST("/uploads", controllers.UploadProductImage)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Storefront API is running",
	})
}
