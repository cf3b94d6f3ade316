package domain

import (
	"errors"
)

var (
	MessageSuccessCreateCookbook = "cookbook created successfully"
	MessageSuccessGetCookbook    = "success get cookbook"
	MessageSuccessGetCookbooks   = "success get cookbooks"
	MessageSuccessSaveRecipe     = "recipe saved to cookbook"

	MessageFailedCreateCookbook = "failed to create cookbook"
	MessageFailedGetCookbook    = "Cookbook not found."
	MessageFailedGetCookbooks   = "An error occurred while loading the cookbooks"
	MessageFailedSaveRecipe     = "failed to save recipe to cookbook"

	ErrCookbookNotFound = errors.New("cookbook not found")
	ErrNotCookbookOwner = errors.New("user does not own cookbook")
)

type (
	CreateCookbookRequest struct {
		Name string `json:"name" form:"name" validate:"required"`
	}

	SaveRecipeRequest struct {
		RecipeID   string `json:"recipeID" form:"recipeID" validate:"required,uuid"`
		CookbookID string `json:"cookbookId" form:"cookbookId" validate:"required,uuid"`
	}

	CookbookResponse struct {
		ID   string `json:"cookbook_id"`
		Name string `json:"name"`
	}

	CookbookRecipesResponse struct {
		Cookbook CookbookResponse `json:"cookbook"`
		Recipes  []Recipe         `json:"recipes"`
	}

	SaveRecipeFormResponse struct {
		Recipe    Recipe             `json:"recipe"`
		Cookbooks []CookbookResponse `json:"cookbooks"`
	}
)
