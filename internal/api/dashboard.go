package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"complaint_system/internal/dashboard" // Dashboard aggregation
	"complaint_system/internal/domain"    // Importing domain models
	"complaint_system/internal/utils"     // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// dashboardResponse is the cached dashboard payload
type dashboardResponse struct {
	Summary *dashboard.Summary `json:"summary"`          // Aggregated counts
	Admins  []domain.User      `json:"admins,omitempty"` // Assignment picker, admins only
}

// DashboardHandler returns the complaint statistics for the authenticated
// user. Responses are cached for a short TTL and complaint mutations
// invalidate the affected keys.
func DashboardHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		ctx := context.Background()         // Context for Redis operations
		cacheKey := dashboardCacheKey(user) // Shared key for admins, per-user otherwise
		var cached dashboardResponse
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"summary": cached.Summary,
				"admins":  cached.Admins,
				"cached":  true, // Indicate response is from cache
			})
			return
		}
		summary, err := dashboard.Compute(db, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
			return
		}
		resp := dashboardResponse{Summary: summary}
		// Admins also get the staff list for the assignment picker
		if user.IsAdmin {
			admins, err := dashboard.AdminUsers(db)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list admins"})
				return
			}
			resp.Admins = admins
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{
			"summary": resp.Summary,
			"admins":  resp.Admins,
			"cached":  false, // Indicate response is not from cache
		})
	}
}
