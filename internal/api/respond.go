package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"complaint_system/internal/domain" // Importing domain models
	"complaint_system/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// currentUser resolves the authenticated user set by the JWT middleware. On
// failure it writes the response itself and returns false.
func currentUser(c *gin.Context, db *gorm.DB) (*domain.User, bool) {
	userID, exists := c.Get("userID") // Get userID from context
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	var user domain.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return &user, true
}

// respondServiceError translates a service error into an HTTP response.
// Authorization denials are reported with a uniform message so callers learn
// nothing about why they were refused.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// idParam parses a numeric path parameter. On failure it writes the response
// itself and returns false.
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}

// dashboardCacheKey returns the cache key for an actor's dashboard. Admin
// dashboards are global, so all admins share one key.
func dashboardCacheKey(actor *domain.User) string {
	if actor.IsAdmin {
		return "dashboard:admin"
	}
	return "dashboard:user:" + strconv.Itoa(int(actor.ID))
}

// invalidateDashboards drops the cached dashboards affected by a complaint
// mutation: the shared admin view and the owner's view.
func invalidateDashboards(rdb *redis.Client, ownerID uint) {
	ctx := context.Background() // Context for Redis operations
	_ = utils.DeleteCache(ctx, rdb, "dashboard:admin")
	_ = utils.DeleteCache(ctx, rdb, "dashboard:user:"+strconv.Itoa(int(ownerID)))
}
