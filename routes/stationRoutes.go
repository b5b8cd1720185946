package routes

import (
	"aquasense-be/controllers"
	"aquasense-be/middlewares"

	"github.com/gin-gonic/gin"
)

// StationRoutes sets up the monitoring-station routes. Station and
// latest-reading listings are public; sync and reading ingestion are
// restricted to privileged roles.
func StationRoutes(r *gin.Engine, sc *controllers.StationController, authenticate gin.HandlerFunc) {
	stations := r.Group("/stations")
	{
		stations.GET("", sc.List)
		stations.GET("/readings/latest", sc.LatestReadings)
		stations.POST("/sync", authenticate, middlewares.RequirePrivileged(), sc.SyncStations)
		stations.POST("/readings", authenticate, middlewares.RequirePrivileged(), sc.AddReading)
	}
}
