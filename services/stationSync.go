package services

import (
	"context"
	"errors"
	"log"
	"strconv"

	"aquasense-be/models"

	"gorm.io/gorm"
)

// StationDirectory is the upstream source of station descriptors.
type StationDirectory interface {
	FetchStations(ctx context.Context) ([]StationDescriptor, error)
}

// SyncSummary reports what a sync run did.
type SyncSummary struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// SyncService imports stations from the directory into the database.
// Stations are keyed by name: missing ones are inserted, existing ones
// are left untouched, so repeated runs are idempotent. Existing
// coordinates are never refreshed from the source.
type SyncService struct {
	db        *gorm.DB
	directory StationDirectory
}

func NewSyncService(db *gorm.DB, directory StationDirectory) *SyncService {
	return &SyncService{db: db, directory: directory}
}

// Sync fetches the directory and inserts unknown stations. A malformed
// record is logged and skipped without aborting the batch; the batch is
// committed once, after all records are processed. A fetch failure
// aborts before anything is written.
func (s *SyncService) Sync(ctx context.Context) (*SyncSummary, error) {
	descriptors, err := s.directory.FetchStations(ctx)
	if err != nil {
		return nil, err
	}

	summary := &SyncSummary{Fetched: len(descriptors)}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	for _, d := range descriptors {
		lat, latErr := strconv.ParseFloat(string(d.Latitude), 64)
		lon, lonErr := strconv.ParseFloat(string(d.Longitude), 64)
		if d.Name == "" || latErr != nil || lonErr != nil {
			log.Printf("Skipping invalid station record: %+v", d)
			summary.Skipped++
			continue
		}

		var existing models.WaterStation
		err := tx.Where("name = ?", d.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error processing station %s: %v", d.Name, err)
			summary.Skipped++
			continue
		}

		station := models.WaterStation{
			Name:      d.Name,
			Latitude:  lat,
			Longitude: lon,
			Location:  d.Territory,
		}
		if err := tx.Create(&station).Error; err != nil {
			log.Printf("Error inserting station %s: %v", d.Name, err)
			summary.Skipped++
			continue
		}
		summary.Created++
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return summary, nil
}
