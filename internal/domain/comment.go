package domain

// Comment Model
type Comment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	ComplaintID uint   `gorm:"not null" json:"complaint_id"`           // Foreign key to the parent Complaint
	UserID      uint   `gorm:"not null" json:"user_id"`                // Foreign key to the authoring User
	Text        string `gorm:"type:text;not null" json:"text"`         // Comment body, non-empty
	CreatedAt   int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
