package handlers

import (
	"errors"
	"fmt"

	"recipeshare/domain"
	"recipeshare/internal/api/presenters"
	"recipeshare/pkg/cookbook"
	"recipeshare/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	CookbookHandler interface {
		CreateCookbook(c *fiber.Ctx) error
		ViewCookbook(c *fiber.Ctx) error
		MyCookbooks(c *fiber.Ctx) error
		SaveRecipePage(c *fiber.Ctx) error
		SaveRecipe(c *fiber.Ctx) error
	}

	cookbookHandler struct {
		cookbookService cookbook.CookbookService
		recipeService   recipe.RecipeService
		validator       *validator.Validate
	}
)

func NewCookbookHandler(cookbookService cookbook.CookbookService, recipeService recipe.RecipeService, validator *validator.Validate) CookbookHandler {
	return &cookbookHandler{
		cookbookService: cookbookService,
		recipeService:   recipeService,
		validator:       validator,
	}
}

func (h *cookbookHandler) CreateCookbook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateCookbookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateCookbook, err)
	}

	if _, err := h.cookbookService.CreateCookbook(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateCookbook, err)
	}

	return c.Redirect("/profile", fiber.StatusFound)
}

// ViewCookbook reports a missing cookbook and a cookbook owned by someone
// else identically: both are a 404 to the requester.
func (h *cookbookHandler) ViewCookbook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	cookbookID := c.Query("cookbookId")

	if _, err := uuid.Parse(cookbookID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCookbook, domain.ErrParseUUID)
	}

	res, err := h.cookbookService.GetCookbookRecipes(c.Context(), cookbookID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCookbookNotFound) || errors.Is(err, domain.ErrNotCookbookOwner) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCookbook, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCookbooks, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"title": res.Cookbook.Name,
		"data":  res.Recipes,
	}, fiber.StatusOK, domain.MessageSuccessGetCookbook)
}

func (h *cookbookHandler) MyCookbooks(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	cookbooks, err := h.cookbookService.GetOwnedCookbooks(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCookbooks, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"title": "My Cookbooks",
		"data":  cookbooks,
	}, fiber.StatusOK, domain.MessageSuccessGetCookbooks)
}

func (h *cookbookHandler) SaveRecipePage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Query("recipeId")

	if _, err := uuid.Parse(recipeID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipe, domain.ErrParseUUID)
	}

	recipeRes, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipe, err)
	}

	cookbooks, err := h.cookbookService.GetOwnedCookbooks(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCookbooks, err)
	}

	return presenters.SuccessResponse(c, domain.SaveRecipeFormResponse{
		Recipe:    recipeRes.Recipe,
		Cookbooks: cookbooks,
	}, fiber.StatusOK, domain.MessageSuccessGetCookbooks)
}

func (h *cookbookHandler) SaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveRecipe, err)
	}

	if err := h.cookbookService.SaveRecipe(c.Context(), *req, userID); err != nil {
		// Not-owner and store failures surface the same way here.
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveRecipe, err)
	}

	return c.Redirect(fmt.Sprintf("/cookbook?cookbookId=%s", req.CookbookID), fiber.StatusFound)
}
