// Package lifecycle implements the complaint state transitions: submission,
// status changes, assignment, commenting and deletion. Every mutation takes
// the acting user explicitly and is gated by the authz policy.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"complaint_system/internal/authz"
	"complaint_system/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Service handles the business logic for complaints.
type Service struct {
	DB *gorm.DB
}

// NewService creates a new lifecycle service.
func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// SubmitInput carries the caller-validated fields for a new complaint.
type SubmitInput struct {
	Title       string
	Description string
	Category    string
	Priority    string
	Attachment  string
}

// Submit creates a new complaint for user with status Pending. The submitter
// is fixed at creation and never reassigned.
func (s *Service) Submit(user *domain.User, in SubmitInput) (*domain.Complaint, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: title and description are required", domain.ErrValidation)
	}
	if !domain.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, in.Category)
	}
	if !domain.ValidPriority(in.Priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, in.Priority)
	}

	complaint := domain.Complaint{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Priority:    in.Priority,
		Attachment:  in.Attachment,
		Status:      domain.StatusPending,
		UserID:      user.ID,
	}
	if err := s.DB.Create(&complaint).Error; err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"complaint_id": complaint.ID,
		"user_id":      user.ID,
		"category":     complaint.Category,
	}).Info("Complaint submitted")
	return &complaint, nil
}

// Get loads a complaint with its comments, gated by the view policy.
func (s *Service) Get(actor *domain.User, id uint) (*domain.Complaint, error) {
	var complaint domain.Complaint
	err := s.DB.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.id asc")
	}).First(&complaint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: complaint %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if d := authz.CanViewComplaint(actor, &complaint); !d.Allowed {
		return nil, domain.ErrUnauthorized
	}
	return &complaint, nil
}

// SetStatus moves a complaint to newStatus and notifies the submitter. The
// status update and the notification insert commit as one transaction. Any of
// the five statuses may follow any other; Resolved and Denied are not terminal
// for status changes, they only block further comments.
func (s *Service) SetStatus(actor *domain.User, id uint, newStatus string) (*domain.Complaint, error) {
	if !domain.ValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, newStatus)
	}
	if d := authz.CanSetStatus(actor); !d.Allowed {
		return nil, domain.ErrUnauthorized
	}
	var complaint domain.Complaint
	if err := s.DB.First(&complaint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: complaint %d", domain.ErrNotFound, id)
		}
		return nil, err
	}

	// Atomic status change + notification
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&complaint).Update("status", newStatus).Error; err != nil {
			return err
		}
		notification := domain.Notification{
			UserID:  complaint.UserID,
			Message: fmt.Sprintf("Your complaint '%s' status has been updated to '%s'.", complaint.Title, newStatus),
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"complaint_id": id,
			"actor_id":     actor.ID,
			"status":       newStatus,
			"error":        err.Error(),
		}).Error("Status update failed")
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"complaint_id": id,
		"actor_id":     actor.ID,
		"status":       newStatus,
	}).Info("Complaint status updated")
	return &complaint, nil
}

// Assign designates staff as responsible for the complaint. Assignment does
// not generate a notification, only status changes do.
func (s *Service) Assign(actor *domain.User, id uint, staffID uint) (*domain.Complaint, error) {
	if d := authz.CanAssign(actor); !d.Allowed {
		return nil, domain.ErrUnauthorized
	}
	var complaint domain.Complaint
	if err := s.DB.First(&complaint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: complaint %d", domain.ErrNotFound, id)
		}
		return nil, err
	}
	var staff domain.User
	if err := s.DB.First(&staff, staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, staffID)
		}
		return nil, err
	}
	if err := s.DB.Model(&complaint).Update("assigned_to", staff.ID).Error; err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"complaint_id": id,
		"actor_id":     actor.ID,
		"staff_id":     staff.ID,
	}).Info("Complaint assigned")
	return &complaint, nil
}

// AddComment appends a comment to the complaint on behalf of actor.
func (s *Service) AddComment(actor *domain.User, id uint, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrValidation)
	}
	var complaint domain.Complaint
	if err := s.DB.First(&complaint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: complaint %d", domain.ErrNotFound, id)
		}
		return nil, err
	}
	if d := authz.CanComment(actor, &complaint); !d.Allowed {
		return nil, domain.ErrUnauthorized
	}
	comment := domain.Comment{
		ComplaintID: complaint.ID,
		UserID:      actor.ID,
		Text:        text,
	}
	if err := s.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a complaint and its comments in one transaction. Comments
// are deleted explicitly rather than by a database-level cascade.
func (s *Service) Delete(actor *domain.User, id uint) error {
	if d := authz.CanDelete(actor); !d.Allowed {
		return domain.ErrUnauthorized
	}
	var complaint domain.Complaint
	if err := s.DB.First(&complaint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: complaint %d", domain.ErrNotFound, id)
		}
		return err
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("complaint_id = ?", complaint.ID).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&complaint).Error
	})
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"complaint_id": id,
		"actor_id":     actor.ID,
	}).Info("Complaint deleted")
	return nil
}
