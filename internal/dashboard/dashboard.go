// Package dashboard computes the read-only complaint statistics shown after
// login. Admins see global numbers, everyone else only their own complaints.
package dashboard

import (
	"complaint_system/internal/domain"

	"gorm.io/gorm"
)

// Summary holds the aggregated complaint counts for one actor's scope.
type Summary struct {
	Total      int64            `json:"total"`       // Total complaints in scope
	ByStatus   map[string]int64 `json:"by_status"`   // Count per status, all five keys present
	ByCategory map[string]int64 `json:"by_category"` // Count per category, only non-zero keys
}

// Compute aggregates complaint counts scoped to actor's own complaints, or to
// all complaints when actor is an admin.
func Compute(db *gorm.DB, actor *domain.User) (*Summary, error) {
	scoped := func() *gorm.DB {
		q := db.Model(&domain.Complaint{})
		if !actor.IsAdmin {
			q = q.Where("user_id = ?", actor.ID)
		}
		return q
	}

	summary := Summary{
		ByStatus:   make(map[string]int64),
		ByCategory: make(map[string]int64),
	}
	if err := scoped().Count(&summary.Total).Error; err != nil {
		return nil, err
	}
	statuses := []string{
		domain.StatusPending,
		domain.StatusInProgress,
		domain.StatusApproved,
		domain.StatusDenied,
		domain.StatusResolved,
	}
	for _, status := range statuses {
		var n int64
		if err := scoped().Where("status = ?", status).Count(&n).Error; err != nil {
			return nil, err
		}
		summary.ByStatus[status] = n
	}

	// Category breakdown via GROUP BY
	rows := []struct {
		Category string
		Count    int64
	}{}
	if err := scoped().Select("category, count(id) as count").Group("category").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		summary.ByCategory[row.Category] = row.Count
	}
	return &summary, nil
}

// AdminUsers lists all admin users, used by the assignment picker.
func AdminUsers(db *gorm.DB) ([]domain.User, error) {
	var admins []domain.User
	if err := db.Where("is_admin = ?", true).Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}
