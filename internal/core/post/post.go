package post

import (
	"time"
)

// Post lifecycle. Posts are never hard-deleted: active → deleted only.
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

type Post struct {
	ID                   uint      `gorm:"primaryKey"`
	UserID               uint      `gorm:"not null;index"`
	Title                string    `gorm:"not null"`
	Location             string    `gorm:"type:varchar(255)"`
	Description          string    `gorm:"type:text"`
	DietarySpecification string    `gorm:"type:varchar(50)"`
	AvailableFrom        time.Time `gorm:"not null"`
	AvailableUntil       time.Time `gorm:"not null"`
	ImageURL             string    `gorm:"type:varchar(512)"`
	Status               string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}
