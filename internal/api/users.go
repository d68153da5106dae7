package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Path id parsing

	"github.com/RAINBOBOBO/Warbler/internal/cache"      // Redis cache helpers
	"github.com/RAINBOBOBO/Warbler/internal/domain"     // Domain models
	"github.com/RAINBOBOBO/Warbler/internal/middleware" // Current user resolution
	"github.com/RAINBOBOBO/Warbler/internal/service"    // Domain services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// pathID parses the :id path parameter. Reports false after writing the 400
// response.
func pathID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(v), true
}

// ListUsersHandler returns all users, or a case-insensitive username search
// when the q query parameter is present. Only the unfiltered listing is
// cached; searches always hit the store.
func ListUsersHandler(users *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q") // Optional search term
		ctx := c.Request.Context()
		if query == "" {
			var cached []domain.User
			// Try the cached unfiltered listing first
			if found, err := cache.Get(ctx, rdb, cache.UsersKey(), &cached); err == nil && found {
				c.JSON(http.StatusOK, gin.H{"users": cached, "cached": true})
				return
			}
		}
		result, err := users.ListUsers(ctx, query)
		if err != nil {
			serviceError(c, err)
			return
		}
		if query == "" {
			_ = cache.Set(ctx, rdb, cache.UsersKey(), result, cache.TTL) // Cache the unfiltered listing
		}
		c.JSON(http.StatusOK, gin.H{"users": result, "cached": false})
	}
}

// ShowUserHandler returns a single user profile
func ShowUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		user, err := users.Get(c.Request.Context(), id)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// FollowingHandler lists the users a user follows
func FollowingHandler(users *service.UserService, social *service.SocialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		user, err := users.Get(c.Request.Context(), id)
		if err != nil {
			serviceError(c, err)
			return
		}
		following, err := social.FollowingOf(c.Request.Context(), user)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"following": following})
	}
}

// FollowersHandler lists the users following a user
func FollowersHandler(users *service.UserService, social *service.SocialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		user, err := users.Get(c.Request.Context(), id)
		if err != nil {
			serviceError(c, err)
			return
		}
		followers, err := social.FollowersOf(c.Request.Context(), user)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"followers": followers})
	}
}

// LikedHandler lists the messages a user has liked, newest first
func LikedHandler(users *service.UserService, reactions *service.ReactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		user, err := users.Get(c.Request.Context(), id)
		if err != nil {
			serviceError(c, err)
			return
		}
		liked, err := reactions.LikedMessagesOf(c.Request.Context(), user)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"messages": liked})
	}
}

// FollowHandler makes the current user follow the target user
func FollowHandler(social *service.SocialService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.CurrentUser(c)
		targetID, ok := pathID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		if err := social.Follow(ctx, actor, targetID); err != nil {
			serviceError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"follower_id": actor.ID, // Following user
			"followed_id": targetID, // Followed user
		}).Info("Follow added") // Log follow
		// The actor's feed now includes the target's messages
		_ = cache.Delete(ctx, rdb, cache.FeedKey(actor.ID))
		c.JSON(http.StatusOK, gin.H{"message": "Now following"})
	}
}

// UnfollowHandler makes the current user stop following the target user
func UnfollowHandler(social *service.SocialService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.CurrentUser(c)
		targetID, ok := pathID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		if err := social.Unfollow(ctx, actor, targetID); err != nil {
			serviceError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"follower_id": actor.ID, // Unfollowing user
			"followed_id": targetID, // Unfollowed user
		}).Info("Follow removed") // Log unfollow
		_ = cache.Delete(ctx, rdb, cache.FeedKey(actor.ID)) // Feed no longer includes the target
		c.JSON(http.StatusOK, gin.H{"message": "Stopped following"})
	}
}

// Request struct for profile update; the password is the current password
// and must re-authenticate before anything is committed
type UpdateProfileRequest struct {
	Username       string `json:"username" binding:"required"` // New username
	Email          string `json:"email" binding:"required"`    // New email
	ImageURL       string `json:"image_url"`                   // New profile image
	HeaderImageURL string `json:"header_image_url"`            // New header image
	Bio            string `json:"bio"`                         // New bio
	Password       string `json:"password" binding:"required"` // Current password, confirms the change
}

// UpdateProfileHandler edits the current user's profile
func UpdateProfileHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.CurrentUser(c)
		var req UpdateProfileRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := users.UpdateProfile(c.Request.Context(), actor, service.ProfileUpdate{
			Username:       req.Username,
			Email:          req.Email,
			ImageURL:       req.ImageURL,
			HeaderImageURL: req.HeaderImageURL,
			Bio:            req.Bio,
			Password:       req.Password,
		})
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// DeleteAccountHandler removes the current user's account and all owned state
func DeleteAccountHandler(users *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.CurrentUser(c)
		ctx := c.Request.Context()
		if err := users.Delete(ctx, actor); err != nil {
			serviceError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  actor.ID,       // Deleted user ID
			"username": actor.Username, // Deleted username
		}).Info("Account deleted") // Log account deletion
		_ = cache.Delete(ctx, rdb, cache.FeedKey(actor.ID)) // Drop the stale feed
		_ = cache.Delete(ctx, rdb, cache.UsersKey())        // Listing no longer contains the user
		c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
	}
}
