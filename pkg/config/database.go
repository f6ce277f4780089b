package config

import (
	"fmt"
	"log"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to PostgreSQL and migrates the schema
func InitDB(cfg *Config) (*gorm.DB, error) {
	if cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Ping the database to verify connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}
	log.Println("Successfully connected to PostgreSQL!")

	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("failed to auto migrate models: %w", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	return db, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting SQL DB from GORM: %v\n", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing PostgreSQL connection: %v\n", err)
		return
	}
	log.Println("PostgreSQL connection closed.")
}
