package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mhvocab/api/internal/cache"
	"github.com/mhvocab/api/internal/config"
	"github.com/mhvocab/api/internal/database"
	"github.com/mhvocab/api/internal/handler"
	"github.com/mhvocab/api/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Redis cache
	var redisCache *cache.RedisCache
	redisCache, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		// Continue without Redis cache (fail-open)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(db, cfg)
	documentHandler := handler.NewDocumentHandler(db)
	collectionHandler := handler.NewCollectionHandler(db)
	wordHandler := handler.NewWordHandler(db, redisCache)

	// Setup router
	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware: only the allowlisted frontend origins, with credentials
	// so the token cookie travels cross-origin.
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Hello World!")
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/sign-in", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/current-user", middleware.AuthMiddleware(cfg.JWTSecret), authHandler.Me)

		// Documents
		api.GET("/documents/:userId", documentHandler.List)
		api.POST("/documents/create-document", documentHandler.Create)

		// Collections
		api.GET("/collections/:documentId", collectionHandler.List)
		api.POST("/collections/create-collection", collectionHandler.Create)

		// Words
		api.GET("/words/:collectionId", wordHandler.List)
		api.POST("/words/create-word", wordHandler.Create)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("API server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
