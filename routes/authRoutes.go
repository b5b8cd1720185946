package routes

import (
	"aquasense-be/controllers"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, ac *controllers.AuthController, authenticate gin.HandlerFunc) {
	r.POST("/register", ac.Register)
	r.POST("/login", ac.Login)
	r.GET("/user", authenticate, ac.GetMe)
}
