package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/queuely/queuely-api/internal/config"
	"github.com/queuely/queuely-api/internal/models"
)

// NewDB opens the pool and registers the full schema once, before any
// request is served. Handlers never declare associations themselves.
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
		&models.Customer{},
		&models.Business{},
		&models.Service{},
		&models.Barber{},
		&models.Booking{},
		&models.Review{},
		&models.Notification{},
		&models.AuditEvent{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
