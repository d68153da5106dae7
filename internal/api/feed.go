package api

import (
	"net/http" // HTTP status codes

	"github.com/RAINBOBOBO/Warbler/internal/cache"      // Redis cache helpers
	"github.com/RAINBOBOBO/Warbler/internal/domain"     // Domain models
	"github.com/RAINBOBOBO/Warbler/internal/middleware" // Current user resolution
	"github.com/RAINBOBOBO/Warbler/internal/service"    // Domain services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// HomeFeedHandler returns the home feed for the current user. Anonymous
// callers get the distinct anonymous variant: an empty feed, never another
// user's messages. Behind OptionalUser middleware.
func HomeFeedHandler(feed *service.FeedService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			// Anonymous landing variant
			c.JSON(http.StatusOK, gin.H{"messages": []domain.Message{}, "anonymous": true})
			return
		}
		ctx := c.Request.Context()
		cacheKey := cache.FeedKey(user.ID) // Cache key for this user's feed
		var cached []domain.Message
		// Try the cache first
		if found, err := cache.Get(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"messages": cached, "anonymous": false, "cached": true})
			return
		}
		msgs, err := feed.HomeFeed(ctx, user)
		if err != nil {
			serviceError(c, err)
			return
		}
		_ = cache.Set(ctx, rdb, cacheKey, msgs, cache.TTL) // Cache the feed
		c.JSON(http.StatusOK, gin.H{"messages": msgs, "anonymous": false, "cached": false})
	}
}
