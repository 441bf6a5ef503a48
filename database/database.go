package database

import (
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fueltracker-api/models"
	"fueltracker-api/services"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Setting{},
		&models.User{},
		&models.TankCycle{},
		&models.Ride{},
		&models.Admin{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Bootstrap creates the Setting and Admin singletons when they are missing.
// It runs once at startup instead of lazily on first read, and is idempotent
// so concurrent instances racing through it converge on one row each.
func Bootstrap(db *gorm.DB, auth *services.AuthService, defaultAdminPassword string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var setting models.Setting
		if err := tx.First(&setting).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			setting = models.Setting{Currency: "CZK", FuelPrice: 35.50}
			if err := tx.Create(&setting).Error; err != nil {
				return err
			}
		}

		var admin models.Admin
		if err := tx.First(&admin).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			passwordHash, err := auth.HashPassword(defaultAdminPassword)
			if err != nil {
				return err
			}
			admin = models.Admin{PasswordHash: passwordHash}
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to bootstrap database: %w", err)
	}
	return nil
}
