package handlers

import (
	"errors"
	"fmt"

	"recipeshare/domain"
	"recipeshare/internal/api/presenters"
	"recipeshare/internal/utils/storage"
	"recipeshare/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	RecipeHandler interface {
		Home(c *fiber.Ctx) error
		Search(c *fiber.Ctx) error
		AddRecipePage(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		ViewRecipe(c *fiber.Ctx) error
		LikeRecipe(c *fiber.Ctx) error
		LikedRecipes(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		s3            *storage.AwsS3
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, s3 *storage.AwsS3, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		s3:            s3,
		validator:     validator,
	}
}

func (h *recipeHandler) Home(c *fiber.Ctx) error {
	pattern := c.Query("search", "")

	res, err := h.recipeService.SearchRecipes(c.Context(), pattern)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"title": "Home",
		"data":  res.Recipes,
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) Search(c *fiber.Ctx) error {
	pattern := c.Query("search", "")

	res, err := h.recipeService.SearchRecipes(c.Context(), pattern)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSearch, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"title": fmt.Sprintf("Search results for '%s':", pattern),
		"data":  res.Recipes,
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) AddRecipePage(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{"title": "Add Recipe"}, fiber.StatusOK, "add recipe")
}

func (h *recipeHandler) AddRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, userID)
	if err != nil {
		// Field-type and image-size failures surface the same way store
		// rejections do.
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"title": domain.MessageSuccessCreateRecipe,
		"data":  res,
	}, fiber.StatusOK, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) ViewRecipe(c *fiber.Ctx) error {
	recipeID := c.Query("recipeId")
	if _, err := uuid.Parse(recipeID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipe, domain.ErrParseUUID)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

func (h *recipeHandler) LikeRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LikeRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLikeRecipe, err)
	}

	if err := h.recipeService.LikeRecipe(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLikeRecipe, err)
	}

	return c.Redirect("/likedRecipes", fiber.StatusFound)
}

func (h *recipeHandler) LikedRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.recipeService.GetLikedRecipes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetLiked, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"title": "Liked Recipes",
		"data":  res.Recipes,
	}, fiber.StatusOK, domain.MessageSuccessGetLiked)
}

func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if fileHeader.Size > domain.MaxRecipeImageBytes {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadImage, domain.ErrImageTooLarge)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadImage, err)
	}
	defer file.Close()

	key := fmt.Sprintf("recipes/%s-%s", uuid.New().String(), fileHeader.Filename)
	url, err := h.s3.UploadFile(c.Context(), key, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, domain.UploadImageResponse{ImageURL: url}, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
