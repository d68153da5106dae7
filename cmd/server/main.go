package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"github.com/RAINBOBOBO/Warbler/internal/api"        // Custom package for API handlers
	"github.com/RAINBOBOBO/Warbler/internal/config"     // Custom package for configuration
	"github.com/RAINBOBOBO/Warbler/internal/middleware" // Custom package for middleware
	"github.com/RAINBOBOBO/Warbler/internal/service"    // Custom package for domain services

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

	// Connect to the database; TranslateError keeps uniqueness violations portable
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
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

	// Domain services
	users := service.NewUserService(db)
	social := service.NewSocialService(db)
	reactions := service.NewReactionService(db)
	feed := service.NewFeedService(db)
	messages := service.NewMessageService(db)

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Public routes
	r.POST("/signup", api.SignupHandler(users, cfg.JWTSecret))                     // Account creation endpoint
	r.POST("/login", api.LoginHandler(users, cfg.JWTSecret))                       // Login endpoint
	r.GET("/users", api.ListUsersHandler(users, redisClient))                      // User listing and search endpoint
	r.GET("/users/:id", api.ShowUserHandler(users))                                // User profile endpoint
	r.GET("/messages/:id", api.ShowMessageHandler(messages))                       // Single message endpoint
	r.GET("/", middleware.OptionalUser(db, cfg.JWTSecret),                         // Home feed resolves the user when present
		api.HomeFeedHandler(feed, redisClient))

	// Protected routes (require a signed-in user)
	authGroup := r.Group("/")
	authGroup.Use(middleware.RequireUser(db, cfg.JWTSecret))
	authGroup.POST("/logout", api.LogoutHandler())                                          // Logout endpoint
	authGroup.GET("/users/:id/following", api.FollowingHandler(users, social))              // Following listing endpoint
	authGroup.GET("/users/:id/followers", api.FollowersHandler(users, social))              // Followers listing endpoint
	authGroup.GET("/users/:id/liked", api.LikedHandler(users, reactions))                   // Liked messages endpoint
	authGroup.POST("/users/:id/follow", api.FollowHandler(social, redisClient))             // Follow endpoint
	authGroup.DELETE("/users/:id/follow", api.UnfollowHandler(social, redisClient))         // Unfollow endpoint
	authGroup.PATCH("/profile", api.UpdateProfileHandler(users))                            // Profile update endpoint
	authGroup.DELETE("/account", api.DeleteAccountHandler(users, redisClient))              // Account deletion endpoint
	authGroup.POST("/messages", api.CreateMessageHandler(messages, social, redisClient))    // Message creation endpoint
	authGroup.DELETE("/messages/:id", api.DeleteMessageHandler(messages, social, redisClient)) // Message deletion endpoint
	authGroup.POST("/messages/:id/like", api.LikeHandler(reactions))                        // Like endpoint
	authGroup.DELETE("/messages/:id/like", api.UnlikeHandler(reactions))                    // Unlike endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
