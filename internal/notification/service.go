// Package notification manages user notifications and their read state.
package notification

import (
	"errors"
	"fmt"

	"complaint_system/internal/authz"
	"complaint_system/internal/domain"

	"gorm.io/gorm"
)

// Service handles notification persistence and acknowledgment.
type Service struct {
	DB *gorm.DB
}

// NewService creates a new notification service.
func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Create stores a new unread notification for userID.
func (s *Service) Create(userID uint, message string) (*domain.Notification, error) {
	notification := domain.Notification{
		UserID:  userID,
		Message: message,
	}
	if err := s.DB.Create(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkRead flips the notification to read on behalf of its owner. Marking an
// already-read notification is a no-op, not an error.
func (s *Service) MarkRead(actor *domain.User, id uint) (*domain.Notification, error) {
	var notification domain.Notification
	if err := s.DB.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: notification %d", domain.ErrNotFound, id)
		}
		return nil, err
	}
	if d := authz.CanReadNotification(actor, &notification); !d.Allowed {
		return nil, domain.ErrUnauthorized
	}
	if notification.IsRead {
		return &notification, nil
	}
	if err := s.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// ListForUser returns the user's notifications, newest first.
func (s *Service) ListForUser(userID uint) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := s.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}
