package config

import (
	"log"
	"sync"

	"aquasense-be/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	db   *gorm.DB
	once sync.Once
)

// Schemas are the logical namespaces the tables live in.
var Schemas = []string{"auth", "reports", "monitoring"}

// ConnectDB opens the Postgres connection, creates the schemas and
// migrates the tables. Safe to call more than once; the connection is
// established on the first call.
func ConnectDB(dsn string) *gorm.DB {
	once.Do(func() {
		gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		for _, schema := range Schemas {
			if err := gdb.Exec("CREATE SCHEMA IF NOT EXISTS " + schema).Error; err != nil {
				log.Fatalf("Failed to create schema %s: %v", schema, err)
			}
		}

		if err := Migrate(gdb); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		db = gdb
	})

	return db
}

// Migrate creates or updates the tables for all models.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Report{},
		&models.WaterStation{},
		&models.StationReading{},
	)
}
