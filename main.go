package main

import (
	"log"
	"net/http"

	"aquasense-be/config"
	"aquasense-be/controllers"
	"aquasense-be/middlewares"
	"aquasense-be/routes"
	"aquasense-be/services"
	authUtils "aquasense-be/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db := config.ConnectDB(cfg.DatabaseDSN)
	if db == nil {
		log.Fatal("Failed to connect to database")
	}
	log.Println("Database connection established successfully!")

	var limiter *redis.Client
	if cfg.RedisAddress != "" {
		limiter, err = config.ConnectRedis(cfg.RedisAddress, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Connected to Redis!")
	} else {
		log.Println("REDIS_ADDRESS not set, report rate limiting disabled")
	}

	tokens := authUtils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	directory := services.NewStationDirectoryClient(cfg.StationDirectoryURL, cfg.StationFetchTimeout)
	syncService := services.NewSyncService(db, directory)
	authenticate := middlewares.Authenticate(db, tokens)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.AuthRoutes(r, controllers.NewAuthController(db, tokens), authenticate)
	routes.ReportRoutes(r, controllers.NewReportController(db), authenticate, limiter, cfg.ReportDailyLimit)
	routes.StationRoutes(r, controllers.NewStationController(db, syncService), authenticate)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
