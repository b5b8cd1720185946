package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"aquasense-be/middlewares"
	"aquasense-be/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// Create stores a new pollution report for the calling user. Status is
// always "pending" at creation, regardless of input.
func (rc *ReportController) Create(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		PhotoURL    *string `json:"photo_url,omitempty"`
		Location    string  `json:"location" binding:"required,max=255"`
		Description string  `json:"description" binding:"required"`
		WaterSource string  `json:"water_source" binding:"required,max=100"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := models.Report{
		UserID:      user.ID,
		PhotoURL:    input.PhotoURL,
		Location:    input.Location,
		Description: input.Description,
		WaterSource: input.WaterSource,
		Status:      models.StatusPending,
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Report created successfully",
		"report_id": report.ID,
	})
}

// My lists the calling user's own reports.
func (rc *ReportController) My(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var reports []models.Report
	if err := rc.DB.Where("user_id = ?", user.ID).Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// All lists every report. Restricted to privileged roles by the router.
func (rc *ReportController) All(c *gin.Context) {
	var reports []models.Report
	if err := rc.DB.Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// UpdateStatus sets a report's status to the submitted value. The
// value is stored as-is; nothing constrains it to a fixed set, which
// matches the observed behavior of the review workflow.
func (rc *ReportController) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var report models.Report
	if err := rc.DB.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report"})
		return
	}

	report.Status = models.ReportStatus(input.Status)
	if err := rc.DB.Save(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Report status updated successfully",
		"report_id":  report.ID,
		"new_status": report.Status,
	})
}
