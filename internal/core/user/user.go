package user

import (
	"time"
)

// Channel tags accepted in notification_type.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

type User struct {
	ID                   uint      `gorm:"primaryKey"`
	FirstName            string    `gorm:"not null"`
	LastName             string    `gorm:"not null"`
	Email                string    `gorm:"unique;not null"`
	Password             string    `gorm:"not null"`
	NotificationType     string    `gorm:"type:varchar(20)"`
	DietaryPreferences   string    `gorm:"type:varchar(50)"`
	IsAdmin              bool      `gorm:"not null;default:false"`
	NotificationsEnabled bool      `gorm:"not null;default:false"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}
