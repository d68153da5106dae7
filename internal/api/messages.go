package api

import (
	"net/http" // HTTP status codes

	"github.com/RAINBOBOBO/Warbler/internal/cache"      // Redis cache helpers
	"github.com/RAINBOBOBO/Warbler/internal/middleware" // Current user resolution
	"github.com/RAINBOBOBO/Warbler/internal/service"    // Domain services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// Request struct for posting a message
type CreateMessageRequest struct {
	Text string `json:"text" binding:"required"` // Message body must be provided
}

// invalidateFeeds drops the cached feed of the author and of everyone
// following the author; their feeds all contain the author's messages.
func invalidateFeeds(c *gin.Context, rdb *redis.Client, social *service.SocialService, authorID uint) {
	ctx := c.Request.Context()
	_ = cache.Delete(ctx, rdb, cache.FeedKey(authorID))
	followerIDs, err := social.FollowerIDsOf(ctx, authorID)
	if err != nil {
		return // Stale cache expires via TTL, nothing else to do
	}
	for _, id := range followerIDs {
		_ = cache.Delete(ctx, rdb, cache.FeedKey(id))
	}
}

// CreateMessageHandler posts a message owned by the current user
func CreateMessageHandler(messages *service.MessageService, social *service.SocialService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.CurrentUser(c)
		var req CreateMessageRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		msg, err := messages.Create(c.Request.Context(), actor, req.Text)
		if err != nil {
			serviceError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":    actor.ID, // Author
			"message_id": msg.ID,   // New message ID
		}).Info("Message posted") // Log message creation
		invalidateFeeds(c, rdb, social, actor.ID)
		c.JSON(http.StatusCreated, gin.H{"message": msg})
	}
}

// ShowMessageHandler returns a single message
func ShowMessageHandler(messages *service.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		msg, err := messages.Get(c.Request.Context(), id)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}

// DeleteMessageHandler removes a message; only its owner may
func DeleteMessageHandler(messages *service.MessageService, social *service.SocialService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.CurrentUser(c)
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := messages.Delete(c.Request.Context(), actor, id); err != nil {
			serviceError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":    actor.ID, // Owner
			"message_id": id,       // Deleted message ID
		}).Info("Message deleted") // Log message deletion
		invalidateFeeds(c, rdb, social, actor.ID)
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
	}
}

// LikeHandler marks a message as liked by the current user
func LikeHandler(reactions *service.ReactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.CurrentUser(c)
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := reactions.Like(c.Request.Context(), actor, id); err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message liked"})
	}
}

// UnlikeHandler removes the current user's like from a message
func UnlikeHandler(reactions *service.ReactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.CurrentUser(c)
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := reactions.Unlike(c.Request.Context(), actor, id); err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message unliked"})
	}
}
