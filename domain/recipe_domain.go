package domain

import (
	"errors"
	"time"
)

// MaxRecipeImageBytes bounds the inline image payload accepted on creation.
const MaxRecipeImageBytes = 10_000_000

var (
	MessageSuccessCreateRecipe = "Succesfully created recipe"
	MessageSuccessGetRecipes   = "success get recipes"
	MessageSuccessGetRecipe    = "success get recipe detail"
	MessageSuccessLikeRecipe   = "recipe liked"
	MessageSuccessGetLiked     = "success get liked recipes"
	MessageSuccessUploadImage  = "success upload recipe image"

	MessageFailedCreateRecipe = "Failed to create recipe"
	MessageFailedSearch       = "Error searching database"
	MessageFailedGetRecipes   = "failed to get recipes"
	MessageFailedGetRecipe    = "failed to get recipe detail"
	MessageFailedLikeRecipe   = "failed to like recipe"
	MessageFailedGetLiked     = "failed to get liked recipes"
	MessageFailedUploadImage  = "failed to upload recipe image"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrRecipeFieldType = errors.New("recipe field is not numeric")
	ErrImageTooLarge   = errors.New("recipe image exceeds size limit")
)

type (
	// CreateRecipeRequest carries time and difficulty as raw strings so a
	// non-numeric value fails the insert the same way a relational type
	// mismatch would, not as a body-parse error.
	CreateRecipeRequest struct {
		Name         string `json:"name" form:"name" validate:"required"`
		Description  string `json:"description" form:"description"`
		Difficulty   string `json:"difficulty" form:"difficulty" validate:"required"`
		Time         string `json:"time" form:"time" validate:"required"`
		Ingredients  string `json:"ingredients" form:"ingredients"`
		Instructions string `json:"instructions" form:"instructions"`
		Image        string `json:"image,omitempty" form:"image"`
	}

	LikeRecipeRequest struct {
		RecipeID string `json:"recipeId" form:"recipeId" validate:"required,uuid"`
	}

	Recipe struct {
		ID          string    `json:"recipe_id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Difficulty  int       `json:"difficulty"`
		TimeMinutes int       `json:"time"`
		CreatedAt   time.Time `json:"created_at"`
	}

	RecipeDetail struct {
		Recipe
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
		Image        string   `json:"image,omitempty"`
	}

	RecipeListResponse struct {
		Recipes []Recipe `json:"recipes"`
		Total   int      `json:"total"`
	}

	UploadImageResponse struct {
		ImageURL string `json:"image_url"`
	}
)
