package notification

import (
	"time"
)

const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

// Notification is one delivery record for one user. PostID is 0 for
// direct sends that are not derived from a post.
type Notification struct {
	ID               uint      `gorm:"primaryKey"`
	PostID           uint      `gorm:"not null;index"`
	UserID           uint      `gorm:"not null;index"`
	NotificationType string    `gorm:"type:varchar(20);not null"`
	MessageContent   string    `gorm:"type:text"`
	SentAt           time.Time `gorm:"not null"`
	Status           string    `gorm:"type:varchar(20);not null"`
}
