package config

import (
	"fmt"

	"recipeshare/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the connection pool without a startup ping. A store that is
// unreachable at startup is logged, not fatal; individual requests fail until
// it comes back.
func ConnectDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableAutomaticPing: true,
		TranslateError:       true,
	})
	if err != nil {
		log.Errorf("Database connection failed: %v", err)
		return nil, err
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Ping(); err != nil {
			log.Errorf("Database unreachable: %v", err)
		} else {
			log.Info("Database connection successful")
		}
	}

	return db, nil
}
