package models

import "time"

// WaterStation is an external monitoring point imported from the
// station directory. Name is the de-duplication key used by sync;
// it deliberately carries no unique constraint, so two concurrent
// syncs can still insert the same station twice.
type WaterStation struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:255" json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Location  string  `gorm:"size:255" json:"location"`
}

func (WaterStation) TableName() string {
	return "monitoring.water_stations"
}

// StationReading is a single parameter measurement for a station.
// Rows are append-only; "latest reading" is always derived by query.
type StationReading struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	StationID  uint         `gorm:"not null" json:"station_id"`
	Station    WaterStation `gorm:"foreignKey:StationID;constraint:OnDelete:CASCADE" json:"-"`
	Parameter  string       `gorm:"not null" json:"parameter"`
	Value      float64      `json:"value"`
	RecordedAt time.Time    `gorm:"autoCreateTime" json:"recorded_at"`
}

func (StationReading) TableName() string {
	return "monitoring.station_readings"
}
