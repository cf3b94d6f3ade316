package config

import (
	"os"

	"recipeshare/internal/api/handlers"
	"recipeshare/internal/api/routes"
	"recipeshare/internal/middleware"
	"recipeshare/internal/utils"
	"recipeshare/internal/utils/mailing"
	"recipeshare/internal/utils/storage"
	"recipeshare/pkg/cookbook"
	"recipeshare/pkg/jwt"
	"recipeshare/pkg/recipe"
	"recipeshare/pkg/session"
	"recipeshare/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// A request that panics (the database being unreachable included) must
	// fail alone instead of taking the server down.
	app.Use(recover.New())

	// setting up logging
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	cookbookRepository := cookbook.NewCookbookRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	sessionService := session.NewSessionService()
	userService := user.NewUserService(userRepository, jwtService, mailer)
	recipeService := recipe.NewRecipeService(recipeRepository)
	cookbookService := cookbook.NewCookbookService(cookbookRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, recipeService, cookbookService, sessionService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, s3, validator)
	cookbookHandler := handlers.NewCookbookHandler(cookbookService, recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		CookbookHandler: cookbookHandler,
		Middleware:      middlewares,
		SessionService:  sessionService,
	}
	routesConfig.Setup()
	return app, nil
}
