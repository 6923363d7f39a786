package analytics

import (
	"time"
)

// Metric types recorded by the core workflows.
const (
	MetricPostPublished = "post_published"
)

type Event struct {
	ID         uint      `gorm:"primaryKey"`
	MetricType string    `gorm:"type:varchar(50);not null;index"`
	PostID     *uint     `gorm:"index"`
	UserID     *uint     `gorm:"index"`
	Location   string    `gorm:"type:varchar(255)"`
	Timestamp  time.Time `gorm:"not null"`
	Metadata   string    `gorm:"type:json"`
}
