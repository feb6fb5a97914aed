package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/config"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/models"
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
		&models.VideoCategory{},
		&models.ExerciseVideo{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedCategories(db)

	return db
}

// seedCategories inserts the default catalog categories on first boot.
func seedCategories(db *gorm.DB) {
	defaults := []models.VideoCategory{
		{Name: "Neck & Shoulders", Description: "Mobility and strengthening for the cervical region"},
		{Name: "Lower Back", Description: "Lumbar pain relief and core stability"},
		{Name: "Knees & Hips", Description: "Lower limb rehabilitation"},
		{Name: "Posture", Description: "Postural correction routines"},
		{Name: "Post-Surgery", Description: "Guided recovery programs"},
	}

	for _, cat := range defaults {
		db.Where("name = ?", cat.Name).FirstOrCreate(&cat)
	}
}
