package main

import (
	"recipeshare/cmd/config"
	migration "recipeshare/cmd/database/migrate"
	"recipeshare/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Errorf("continuing without database: %v", err)
	}

	if db != nil {
		if err := migration.Migrate(db); err != nil {
			log.Errorf("migration failed: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
