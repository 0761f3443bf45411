package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Neeto7/neetocafebackoffice/config"
	"github.com/Neeto7/neetocafebackoffice/models"
)

// Connect opens the Postgres connection and runs migrations. The handle is
// returned to the caller instead of being kept in a package global so it can
// be injected into the controllers.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBName, cfg.DBPassword)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderHistory{},
		&models.Expense{},
	); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}
