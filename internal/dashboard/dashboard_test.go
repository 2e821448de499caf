package dashboard_test

import (
	"fmt"
	"testing"

	"complaint_system/internal/dashboard"
	"complaint_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Complaint{}, &domain.Comment{}, &domain.Notification{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, admin bool) *domain.User {
	t.Helper()
	user := domain.User{Username: username, Email: username + "@example.com", Password: "x", IsAdmin: admin}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createComplaint(t *testing.T, db *gorm.DB, owner *domain.User, category, status string) {
	t.Helper()
	c := domain.Complaint{
		Title:       "c",
		Description: "d",
		Category:    category,
		Status:      status,
		UserID:      owner.ID,
	}
	require.NoError(t, db.Create(&c).Error)
}

func statusSum(s *dashboard.Summary) int64 {
	var sum int64
	for _, n := range s.ByStatus {
		sum += n
	}
	return sum
}

func TestComputeScopes(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)
	admin := createUser(t, db, "mallory", true)

	createComplaint(t, db, alice, domain.CategoryFacilities, domain.StatusPending)
	createComplaint(t, db, alice, domain.CategoryFacilities, domain.StatusResolved)
	createComplaint(t, db, alice, domain.CategoryTransport, domain.StatusInProgress)
	createComplaint(t, db, bob, domain.CategoryHostel, domain.StatusDenied)
	createComplaint(t, db, bob, domain.CategoryAcademic, domain.StatusApproved)

	// Admin scope covers everything
	adminSummary, err := dashboard.Compute(db, admin)
	require.NoError(t, err)
	assert.EqualValues(t, 5, adminSummary.Total)
	assert.Equal(t, adminSummary.Total, statusSum(adminSummary), "per-status counts sum to total")
	assert.EqualValues(t, 1, adminSummary.ByStatus[domain.StatusPending])
	assert.EqualValues(t, 1, adminSummary.ByStatus[domain.StatusResolved])
	assert.EqualValues(t, 2, adminSummary.ByCategory[domain.CategoryFacilities])
	assert.EqualValues(t, 1, adminSummary.ByCategory[domain.CategoryHostel])

	// Non-admin scope is restricted to their own complaints
	aliceSummary, err := dashboard.Compute(db, alice)
	require.NoError(t, err)
	assert.EqualValues(t, 3, aliceSummary.Total)
	assert.Equal(t, aliceSummary.Total, statusSum(aliceSummary))
	assert.EqualValues(t, 2, aliceSummary.ByCategory[domain.CategoryFacilities])
	assert.NotContains(t, aliceSummary.ByCategory, domain.CategoryHostel)
	assert.EqualValues(t, 0, aliceSummary.ByStatus[domain.StatusDenied])
}

func TestComputeEmptyScope(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice", false)

	summary, err := dashboard.Compute(db, alice)
	require.NoError(t, err)
	assert.Zero(t, summary.Total)
	assert.Len(t, summary.ByStatus, 5, "all five statuses reported even when empty")
	assert.Empty(t, summary.ByCategory)
}

func TestAdminUsers(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "alice", false)
	createUser(t, db, "mallory", true)
	createUser(t, db, "sam", true)

	admins, err := dashboard.AdminUsers(db)
	require.NoError(t, err)
	require.Len(t, admins, 2)
	for _, a := range admins {
		assert.True(t, a.IsAdmin)
	}
}
