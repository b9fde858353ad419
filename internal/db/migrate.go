package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/devendraInfograins/CardApp/internal/models"
)

// Migrate creates or updates the schema for all platform entities.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	return conn.AutoMigrate(
		&models.Admin{},
		&models.CardHolder{},
		&models.CardRequest{},
		&models.CardInfo{},
		&models.Wallet{},
		&models.Transaction{},
	)
}
