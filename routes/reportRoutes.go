package routes

import (
	"aquasense-be/controllers"
	"aquasense-be/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// ReportRoutes sets up the report routes. When no Redis client is
// provided, report creation runs without a submission quota.
func ReportRoutes(r *gin.Engine, rc *controllers.ReportController, authenticate gin.HandlerFunc, limiter *redis.Client, dailyLimit int) {
	reports := r.Group("/reports", authenticate)
	{
		if limiter != nil {
			reports.POST("", middlewares.ReportRateLimiter(limiter, dailyLimit), rc.Create)
		} else {
			reports.POST("", rc.Create)
		}
		reports.GET("/my", rc.My)
		reports.GET("", middlewares.RequirePrivileged(), rc.All)
		reports.PUT("/:id", middlewares.RequirePrivileged(), rc.UpdateStatus)
	}
}
