package infra

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gymfit/internal/config"
	"gymfit/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {

	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	sqlDB, err := connectionPool.DB()
	if err != nil {
		log.Fatalf("Error getting database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if cfg.AutoMigrate {
		if err := Migrate(connectionPool); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}
	}

	return connectionPool
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(db_models.AllModels()...)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
