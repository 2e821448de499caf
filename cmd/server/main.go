package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging
	"net/http"

	"complaint_system/internal/api"        // Custom package for API handlers
	"complaint_system/internal/config"     // Custom package for configuration
	"complaint_system/internal/middleware" // Custom package for middleware

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance
	r.Use(cors.Default())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Public landing and liveness probe
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "complaint-management-system"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/register", api.RegisterHandler(db))           // Registration endpoint
	r.POST("/login", api.LoginHandler(db, cfg.JWTSecret))  // Login endpoint

	// Authenticated routes (protected by JWT)
	authGroup := r.Group("/")
	authGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authGroup.GET("/dashboard", api.DashboardHandler(db, redisClient))                           // Dashboard endpoint
	authGroup.POST("/complaints", api.SubmitComplaintHandler(db, redisClient, cfg.UploadDir))    // Submit complaint endpoint
	authGroup.GET("/complaints/:id", api.GetComplaintHandler(db))                                // View complaint endpoint
	authGroup.POST("/complaints/:id/comments", api.AddCommentHandler(db))                        // Add comment endpoint
	authGroup.GET("/notifications", api.ListNotificationsHandler(db))                            // List notifications endpoint
	authGroup.GET("/notifications/:id/read", api.ReadNotificationHandler(db))                    // Mark notification read endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/complaints")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	adminGroup.GET("/:id/status/:status", api.UpdateStatusHandler(db, redisClient)) // Update status endpoint
	adminGroup.POST("/:id/assign", api.AssignComplaintHandler(db, redisClient))     // Assign complaint endpoint
	adminGroup.DELETE("/:id", api.DeleteComplaintHandler(db, redisClient))          // Delete complaint endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
