package models

import "time"

// ReportStatus enum
type ReportStatus string

const (
	StatusPending ReportStatus = "pending"
)

// Report represents a pollution observation submitted by a citizen.
// Status starts at "pending" and is changed by authority/admin review;
// the new value is stored as submitted, without validation against a
// fixed set.
type Report struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserID      uint         `gorm:"not null" json:"user_id"`
	User        User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	PhotoURL    *string      `gorm:"size:500" json:"photo_url,omitempty"`
	Location    string       `gorm:"size:255" json:"location"`
	Description string       `gorm:"type:text" json:"description"`
	WaterSource string       `gorm:"size:100" json:"water_source"`
	Status      ReportStatus `gorm:"default:pending" json:"status"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (Report) TableName() string {
	return "reports.reports"
}
