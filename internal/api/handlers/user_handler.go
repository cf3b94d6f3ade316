package handlers

import (
	"errors"

	"recipeshare/domain"
	"recipeshare/internal/api/presenters"
	"recipeshare/pkg/cookbook"
	"recipeshare/pkg/recipe"
	"recipeshare/pkg/session"
	"recipeshare/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		RegisterPage(c *fiber.Ctx) error
		Register(c *fiber.Ctx) error
		LoginPage(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Profile(c *fiber.Ctx) error
		ForgotPassword(c *fiber.Ctx) error
		ResetPassword(c *fiber.Ctx) error
	}

	userHandler struct {
		userService     user.UserService
		recipeService   recipe.RecipeService
		cookbookService cookbook.CookbookService
		sessionService  session.SessionService
		validator       *validator.Validate
	}
)

func NewUserHandler(
	userService user.UserService,
	recipeService recipe.RecipeService,
	cookbookService cookbook.CookbookService,
	sessionService session.SessionService,
	validator *validator.Validate,
) UserHandler {
	return &userHandler{
		userService:     userService,
		recipeService:   recipeService,
		cookbookService: cookbookService,
		sessionService:  sessionService,
		validator:       validator,
	}
}

func (h *userHandler) RegisterPage(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{"title": "Register"}, fiber.StatusOK, "register")
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	if _, err := h.userService.Register(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedUsernameTaken, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	return c.Redirect("/login", fiber.StatusFound)
}

func (h *userHandler) LoginPage(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{"title": "Login"}, fiber.StatusOK, "login")
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	res, err := h.userService.Verify(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Redirect("/register", fiber.StatusFound)
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Re-render the login page with a message rather than an error code.
			return presenters.SuccessResponse(c, fiber.Map{
				"title":   "Login",
				"message": domain.MessageFailedLogin,
			}, fiber.StatusOK, "login")
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	if err := h.sessionService.Login(c, res.ID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return c.Redirect("/", fiber.StatusFound)
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessionService.Logout(c); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"title": "Logout"}, fiber.StatusOK, domain.MessageSuccessLogout)
}

func (h *userHandler) Profile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	userRes, err := h.userService.GetUser(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProfile, err)
	}

	recipes, err := h.recipeService.GetOwnedRecipes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProfile, err)
	}

	cookbooks, err := h.cookbookService.GetOwnedCookbooks(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, domain.ProfileResponse{
		User:      userRes,
		Recipes:   recipes,
		Cookbooks: cookbooks,
	}, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *userHandler) ForgotPassword(c *fiber.Ctx) error {
	req := new(domain.ForgotPasswordRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedForgotRequest, err)
	}

	if err := h.userService.ForgotPassword(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNoResetEmail) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedForgotRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedForgotRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessForgotRequest)
}

func (h *userHandler) ResetPassword(c *fiber.Ctx) error {
	req := new(domain.ResetPasswordRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResetPassword, err)
	}

	if err := h.userService.ResetPassword(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResetPassword, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedResetPassword, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessResetPassword)
}
