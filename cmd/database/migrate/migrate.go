package migration

import (
	"fmt"
	"log"

	"recipeshare/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeOwner{}); err != nil {
		log.Fatalf("Error migrating recipe owner database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Like{}); err != nil {
		log.Fatalf("Error migrating like database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Cookbook{}); err != nil {
		log.Fatalf("Error migrating cookbook database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CookbookOwner{}); err != nil {
		log.Fatalf("Error migrating cookbook owner database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SavedRecipe{}); err != nil {
		log.Fatalf("Error migrating saved recipe database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
