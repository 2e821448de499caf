package api

import (
	"net/http" // HTTP status codes

	"complaint_system/internal/notification" // Notification service

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// ListNotificationsHandler returns the authenticated user's notifications
func ListNotificationsHandler(db *gorm.DB) gin.HandlerFunc {
	service := notification.NewService(db)
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		notifications, err := service.ListForUser(user.ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"notifications": notifications})
	}
}

// ReadNotificationHandler marks one of the user's notifications as read
func ReadNotificationHandler(db *gorm.DB) gin.HandlerFunc {
	service := notification.NewService(db)
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		n, err := service.MarkRead(user, id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"notification": n})
	}
}
