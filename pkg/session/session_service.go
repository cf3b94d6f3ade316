package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const userIDKey = "user_id"

type (
	// SessionService binds authenticated identities to server-side session
	// state referenced by an opaque cookie. It is the sole gate for protected
	// routes.
	SessionService interface {
		Login(c *fiber.Ctx, userID string) error
		CurrentUserID(c *fiber.Ctx) (string, bool)
		Logout(c *fiber.Ctx) error
	}

	sessionService struct {
		store *session.Store
	}
)

func NewSessionService() SessionService {
	store := session.New(session.Config{
		KeyLookup:      "cookie:recipeshare_session",
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
	})
	return &sessionService{store: store}
}

// Login regenerates the session id before binding the user so a pre-login
// cookie cannot be replayed as an authenticated one.
func (s *sessionService) Login(c *fiber.Ctx, userID string) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(userIDKey, userID)
	return sess.Save()
}

func (s *sessionService) CurrentUserID(c *fiber.Ctx) (string, bool) {
	sess, err := s.store.Get(c)
	if err != nil {
		return "", false
	}
	userID, ok := sess.Get(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

func (s *sessionService) Logout(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
