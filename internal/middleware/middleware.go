package middleware

import (
	"recipeshare/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(sessionService session.SessionService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowCredentials: false,
	})
}

// AuthMiddleware resolves the session user before the handler runs. Requests
// without a bound user never reach the handler; they are redirected to the
// login page.
func (m *middleware) AuthMiddleware(sessionService session.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := sessionService.CurrentUserID(c)
		if !ok {
			return c.Redirect("/login", fiber.StatusFound)
		}
		c.Locals("user_id", userID)
		return c.Next()
	}
}
