// database/bootstrap.go
package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"etflow/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Run the backfill BEFORE AutoMigrate so rows written by older versions
	// (which had no effective_mm column) come out with a usable value.
	if err := migrateBackfillEffective(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.WeatherObservation{},
		&entities.Station{},
		&entities.PrecipitationObservation{},
		&entities.SoilProfile{},
		&entities.CropTemplate{},
		&entities.Planting{},
		&entities.IrrigationExecution{},
		&entities.IrrigationSettings{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateBackfillEffective sets effective_mm = gross_mm on precipitation rows
// that predate the effective-rainfall column. Effective never exceeds gross,
// so gross is the safe stand-in until the row is re-derived.
func migrateBackfillEffective(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='precipitation_observations'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}
	var hasCol int
	if err := db.Raw(`SELECT COUNT(*) FROM pragma_table_info('precipitation_observations') WHERE name='effective_mm'`).Scan(&hasCol).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	if hasCol == 0 {
		// AutoMigrate adds the column; new rows derive it at ingestion
		return nil
	}
	return db.Exec(`UPDATE precipitation_observations SET effective_mm = gross_mm WHERE effective_mm IS NULL`).Error
}
