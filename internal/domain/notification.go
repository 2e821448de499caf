package domain

// Notification Model
type Notification struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID    uint   `gorm:"not null" json:"user_id"`                // Foreign key to the target User
	Message   string `gorm:"size:255;not null" json:"message"`       // Notification text
	IsRead    bool   `gorm:"default:false" json:"is_read"`           // Read flag, transitions unread -> read only
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
