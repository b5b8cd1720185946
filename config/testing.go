package config

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB opens an in-memory SQLite database with the auth, reports
// and monitoring schemas attached, migrated for all models. SQLite
// cannot express cross-database foreign keys, so constraint creation
// is disabled; everything else matches the Postgres layout.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Attached databases are per-connection; keep the pool at one.
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	for _, schema := range Schemas {
		if err := gdb.Exec("ATTACH DATABASE ':memory:' AS " + schema).Error; err != nil {
			t.Fatalf("Failed to attach schema %s: %v", schema, err)
		}
	}

	if err := Migrate(gdb); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return gdb
}
