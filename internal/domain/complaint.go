package domain

// Complaint statuses
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusApproved   = "Approved"
	StatusDenied     = "Denied"
	StatusResolved   = "Resolved"
)

// Complaint categories
const (
	CategoryAcademic       = "Academic"
	CategoryFacilities     = "Facilities"
	CategoryTransport      = "Transport"
	CategoryHostel         = "Hostel"
	CategoryAdministration = "Administration"
)

// Complaint priorities
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Complaint Model
type Complaint struct {
	ID          uint      `gorm:"primaryKey" json:"id"`                         // Primary key
	Title       string    `gorm:"size:100;not null" json:"title"`               // Short title
	Description string    `gorm:"type:text;not null" json:"description"`        // Full description
	Category    string    `gorm:"size:50;not null" json:"category"`             // One of the category constants
	Priority    string    `gorm:"size:10" json:"priority,omitempty"`            // One of the priority constants, optional
	Attachment  string    `gorm:"size:100" json:"attachment,omitempty"`         // Stored attachment filename, optional
	Status      string    `gorm:"size:20;default:Pending" json:"status"`        // One of the status constants
	UserID      uint      `gorm:"not null" json:"user_id"`                      // Foreign key to the submitting User, immutable
	AssignedTo  *uint     `json:"assigned_to,omitempty"`                        // Foreign key to the assigned staff User, optional
	Comments    []Comment `gorm:"foreignKey:ComplaintID" json:"comments"`       // Comments in insertion order, removed with the complaint
	CreatedAt   int64     `gorm:"autoCreateTime:milli" json:"created_at"`       // Timestamp of creation in milliseconds
}

// ValidStatus reports whether s is one of the five complaint statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusApproved, StatusDenied, StatusResolved:
		return true
	}
	return false
}

// ValidCategory reports whether s is one of the fixed complaint categories.
func ValidCategory(s string) bool {
	switch s {
	case CategoryAcademic, CategoryFacilities, CategoryTransport, CategoryHostel, CategoryAdministration:
		return true
	}
	return false
}

// ValidPriority reports whether s is a known priority. Priority is optional,
// so the empty string is accepted.
func ValidPriority(s string) bool {
	switch s {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Closed reports whether the complaint no longer accepts comments.
// Status itself stays mutable by admins even after a complaint is closed.
func (c *Complaint) Closed() bool {
	return c.Status == StatusResolved || c.Status == StatusDenied
}
