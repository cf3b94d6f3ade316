package routes

import (
	"recipeshare/internal/api/handlers"
	"recipeshare/internal/middleware"
	"recipeshare/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	CookbookHandler handlers.CookbookHandler
	Middleware      middleware.Middleware
	SessionService  session.SessionService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Cookbooks()
	c.GuestRoute()
}

func (c *Config) User() {
	c.App.Get("/register", c.UserHandler.RegisterPage)
	c.App.Post("/register", c.UserHandler.Register)
	c.App.Get("/login", c.UserHandler.LoginPage)
	c.App.Post("/login", c.UserHandler.Login)
	c.App.Get("/logout", c.UserHandler.Logout)
	c.App.Get("/profile", c.Middleware.AuthMiddleware(c.SessionService), c.UserHandler.Profile)
	c.App.Post("/forgotPassword", c.UserHandler.ForgotPassword)
	c.App.Post("/resetPassword", c.UserHandler.ResetPassword)
}

func (c *Config) Recipes() {
	auth := c.Middleware.AuthMiddleware(c.SessionService)

	c.App.Get("/", c.RecipeHandler.Home)
	c.App.Get("/search", c.RecipeHandler.Search)
	c.App.Get("/viewRecipe", c.RecipeHandler.ViewRecipe)
	c.App.Get("/addRecipe", auth, c.RecipeHandler.AddRecipePage)
	c.App.Post("/addRecipe", auth, c.RecipeHandler.AddRecipe)
	c.App.Post("/likeRecipe", auth, c.RecipeHandler.LikeRecipe)
	c.App.Get("/likedRecipes", auth, c.RecipeHandler.LikedRecipes)
	c.App.Post("/recipeImage", auth, c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Cookbooks() {
	auth := c.Middleware.AuthMiddleware(c.SessionService)

	c.App.Get("/cookbook", auth, c.CookbookHandler.ViewCookbook)
	c.App.Post("/cookbook", auth, c.CookbookHandler.CreateCookbook)
	c.App.Get("/myCookbooks", auth, c.CookbookHandler.MyCookbooks)
	c.App.Get("/saveRecipe", auth, c.CookbookHandler.SaveRecipePage)
	c.App.Post("/saveRecipe", auth, c.CookbookHandler.SaveRecipe)
}

func (c *Config) GuestRoute() {
	c.App.Get("/welcome", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success", "message": "Welcome!"})
	})
}
