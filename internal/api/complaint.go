package api

import (
	"net/http" // HTTP status codes

	"complaint_system/internal/domain"    // Importing domain models
	"complaint_system/internal/lifecycle" // Complaint lifecycle service
	"complaint_system/internal/utils"     // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// SubmitComplaintHandler accepts a multipart form with the complaint fields
// and an optional attachment. The file is stored before the database insert;
// a failed insert can leave an orphan file but never a dangling reference.
func SubmitComplaintHandler(db *gorm.DB, rdb *redis.Client, uploadDir string) gin.HandlerFunc {
	service := lifecycle.NewService(db)
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		in := lifecycle.SubmitInput{
			Title:       c.PostForm("title"),
			Description: c.PostForm("description"),
			Category:    c.PostForm("category"),
			Priority:    c.PostForm("priority"),
		}
		// Optional attachment
		if file, err := c.FormFile("attachment"); err == nil && file != nil {
			filename, err := utils.SaveUpload(c, file, uploadDir)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"user_id": user.ID,
					"error":   err.Error(),
				}).Error("Attachment upload failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store attachment"})
				return
			}
			in.Attachment = filename
		}
		complaint, err := service.Submit(user, in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		invalidateDashboards(rdb, user.ID) // Drop stale dashboard caches
		c.JSON(http.StatusCreated, gin.H{"complaint": complaint})
	}
}

// GetComplaintHandler returns one complaint with its comments
func GetComplaintHandler(db *gorm.DB) gin.HandlerFunc {
	service := lifecycle.NewService(db)
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		complaint, err := service.Get(user, id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"complaint": complaint})
	}
}

// CommentRequest carries the comment form
type CommentRequest struct {
	Text string `json:"text" binding:"required"` // Comment text must be provided
}

// AddCommentHandler appends a comment to a complaint
func AddCommentHandler(db *gorm.DB) gin.HandlerFunc {
	service := lifecycle.NewService(db)
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req CommentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		comment, err := service.AddComment(user, id, req.Text)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"comment": comment})
	}
}

// UpdateStatusHandler sets a complaint's status (admin only by policy)
func UpdateStatusHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	service := lifecycle.NewService(db)
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		complaint, err := service.SetStatus(user, id, c.Param("status"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		invalidateDashboards(rdb, complaint.UserID) // Drop stale dashboard caches
		c.JSON(http.StatusOK, gin.H{"complaint": complaint})
	}
}

// AssignRequest carries the assignment form
type AssignRequest struct {
	StaffID uint `json:"staff_id" binding:"required"` // Target staff user ID
}

// AssignComplaintHandler designates the staff user responsible for a complaint
func AssignComplaintHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	service := lifecycle.NewService(db)
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req AssignRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No staff selected"})
			return
		}
		complaint, err := service.Assign(user, id, req.StaffID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		invalidateDashboards(rdb, complaint.UserID) // Drop stale dashboard caches
		c.JSON(http.StatusOK, gin.H{"complaint": complaint})
	}
}

// DeleteComplaintHandler removes a complaint and its comments
func DeleteComplaintHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	service := lifecycle.NewService(db)
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		// Load first so the owner's dashboard cache can be invalidated
		var complaint domain.Complaint
		if err := db.First(&complaint, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		if err := service.Delete(user, id); err != nil {
			respondServiceError(c, err)
			return
		}
		invalidateDashboards(rdb, complaint.UserID) // Drop stale dashboard caches
		c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted"})
	}
}
