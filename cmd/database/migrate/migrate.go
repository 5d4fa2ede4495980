package migration

import (
	"FreshKeep-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Food{}); err != nil {
		log.Fatalf("Error migrating food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Note{}); err != nil {
		log.Fatalf("Error migrating note database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
