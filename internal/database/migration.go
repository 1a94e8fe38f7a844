package database

import (
	"fmt"

	"github.com/Churchillk/WealthTracker/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.IncomeSource{},
		&models.Income{},
		&models.Expense{},
		&models.NowNext{},
		&models.Project{},
		&models.Goal{},
		&models.Event{},
		&models.DreamCar{},
		&models.Picture{},
		&models.EmergencyFund{},
		&models.IncomeGoal{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
