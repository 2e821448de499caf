package domain_test

import (
	"testing"

	"complaint_system/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		domain.StatusPending,
		domain.StatusInProgress,
		domain.StatusApproved,
		domain.StatusDenied,
		domain.StatusResolved,
	} {
		assert.True(t, domain.ValidStatus(s), "status %q should be valid", s)
	}
	assert.False(t, domain.ValidStatus(""), "empty status must be rejected")
	assert.False(t, domain.ValidStatus("Closed"), "unknown status must be rejected")
	assert.False(t, domain.ValidStatus("pending"), "statuses are case sensitive")
}

func TestValidCategory(t *testing.T) {
	for _, s := range []string{
		domain.CategoryAcademic,
		domain.CategoryFacilities,
		domain.CategoryTransport,
		domain.CategoryHostel,
		domain.CategoryAdministration,
	} {
		assert.True(t, domain.ValidCategory(s), "category %q should be valid", s)
	}
	assert.False(t, domain.ValidCategory(""), "category is required")
	assert.False(t, domain.ValidCategory("Finance"), "unknown category must be rejected")
}

func TestValidPriority(t *testing.T) {
	assert.True(t, domain.ValidPriority(""), "priority is optional")
	assert.True(t, domain.ValidPriority(domain.PriorityLow))
	assert.True(t, domain.ValidPriority(domain.PriorityMedium))
	assert.True(t, domain.ValidPriority(domain.PriorityHigh))
	assert.False(t, domain.ValidPriority("Urgent"), "unknown priority must be rejected")
}

func TestComplaintClosed(t *testing.T) {
	cases := []struct {
		status string
		closed bool
	}{
		{domain.StatusPending, false},
		{domain.StatusInProgress, false},
		{domain.StatusApproved, false},
		{domain.StatusDenied, true},
		{domain.StatusResolved, true},
	}
	for _, tc := range cases {
		c := domain.Complaint{Status: tc.status}
		assert.Equal(t, tc.closed, c.Closed(), "Closed() for status %q", tc.status)
	}
}
