package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kenzychew/pet-app-sub000/internal/config"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Pet{},
		&models.Appointment{},
		&models.PriceEntry{},
		&models.GroomingPhoto{},
		&models.TimeBlock{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Storage-level backstop for the conflict check: two requests racing
	// past the application-level check cannot both commit an overlapping
	// interval for the same groomer.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)

	db.Exec(`
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_overlap
        EXCLUDE USING gist (
            groomer_id WITH =,
            tstzrange(start_time, end_time) WITH &&
        )
        WHERE (status IN ('confirmed', 'in_progress'))
    `)

	db.Exec(`
        ALTER TABLE time_blocks
        ADD CONSTRAINT time_blocks_no_overlap
        EXCLUDE USING gist (
            groomer_id WITH =,
            tstzrange(start_time, end_time) WITH &&
        )
    `)

	return db
}
