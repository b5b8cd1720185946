package controllers

import (
	"errors"
	"log"
	"net/http"

	"aquasense-be/models"
	"aquasense-be/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StationController struct {
	DB   *gorm.DB
	Sync *services.SyncService
}

func NewStationController(db *gorm.DB, sync *services.SyncService) *StationController {
	return &StationController{DB: db, Sync: sync}
}

// SyncStations imports stations from the external directory.
func (sc *StationController) SyncStations(c *gin.Context) {
	summary, err := sc.Sync.Sync(c.Request.Context())
	if err != nil {
		log.Println("Station sync failed:", err)
		if errors.Is(err, services.ErrUpstreamFetch) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch stations"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync stations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stations synced successfully",
		"fetched": summary.Fetched,
		"created": summary.Created,
		"skipped": summary.Skipped,
	})
}

// List returns every known station.
func (sc *StationController) List(c *gin.Context) {
	var stations []models.WaterStation
	if err := sc.DB.Find(&stations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stations"})
		return
	}

	c.JSON(http.StatusOK, stations)
}

// AddReading appends a parameter measurement for a station. The
// timestamp is assigned at insert, never taken from the client.
func (sc *StationController) AddReading(c *gin.Context) {
	var input struct {
		StationID uint     `json:"station_id" binding:"required"`
		Parameter string   `json:"parameter" binding:"required"`
		Value     *float64 `json:"value" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var station models.WaterStation
	if err := sc.DB.First(&station, input.StationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch station"})
		return
	}

	reading := models.StationReading{
		StationID: input.StationID,
		Parameter: input.Parameter,
		Value:     *input.Value,
	}

	if err := sc.DB.Create(&reading).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add reading"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Reading added successfully",
		"reading_id": reading.ID,
	})
}

// LatestReadings returns, for every (station, parameter) pair with at
// least one reading, the most recent row.
func (sc *StationController) LatestReadings(c *gin.Context) {
	latest := sc.DB.Model(&models.StationReading{}).
		Select("station_id, parameter, MAX(recorded_at) AS latest_time").
		Group("station_id, parameter")

	var readings []models.StationReading
	err := sc.DB.Model(&models.StationReading{}).
		Select("station_readings.*").
		Joins("JOIN (?) AS latest ON latest.station_id = station_readings.station_id AND latest.parameter = station_readings.parameter AND latest.latest_time = station_readings.recorded_at", latest).
		Find(&readings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch readings"})
		return
	}

	c.JSON(http.StatusOK, readings)
}
