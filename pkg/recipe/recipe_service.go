package recipe

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"recipeshare/domain"
	"recipeshare/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// instructionDelimiter is the literal two-character token the original data
// model uses between instruction steps. It is not a newline.
const instructionDelimiter = "/n"

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetail, error)
		GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeDetail, error)
		SearchRecipes(ctx context.Context, pattern string) (domain.RecipeListResponse, error)
		GetOwnedRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
		LikeRecipe(ctx context.Context, req domain.LikeRecipeRequest, userID string) error
		GetLikedRecipes(ctx context.Context, userID string) (domain.RecipeListResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetail, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetail{}, domain.ErrParseUUID
	}

	// The store's columns are numeric; a non-numeric value must fail the
	// create without writing anything.
	timeMinutes, err := strconv.Atoi(req.Time)
	if err != nil || timeMinutes < 0 {
		return domain.RecipeDetail{}, domain.ErrRecipeFieldType
	}
	difficulty, err := strconv.Atoi(req.Difficulty)
	if err != nil {
		return domain.RecipeDetail{}, domain.ErrRecipeFieldType
	}

	if len(req.Image) > domain.MaxRecipeImageBytes {
		return domain.RecipeDetail{}, domain.ErrImageTooLarge
	}

	recipe := entities.Recipe{
		ID:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		Difficulty:   difficulty,
		TimeMinutes:  timeMinutes,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Image:        req.Image,
	}

	if err := s.recipeRepository.CreateRecipeWithOwner(ctx, &recipe, ownerID); err != nil {
		return domain.RecipeDetail{}, err
	}

	return toRecipeDetail(&recipe), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	return toRecipeDetail(recipe), nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, pattern string) (domain.RecipeListResponse, error) {
	recipes, err := s.recipeRepository.SearchRecipes(ctx, pattern)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	return domain.RecipeListResponse{
		Recipes: toRecipeList(recipes),
		Total:   len(recipes),
	}, nil
}

func (s *recipeService) GetOwnedRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetOwnedRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toRecipeList(recipes), nil
}

func (s *recipeService) LikeRecipe(ctx context.Context, req domain.LikeRecipeRequest, userID string) error {
	likerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.recipeRepository.CreateLike(ctx, likerID, recipeID)
}

func (s *recipeService) GetLikedRecipes(ctx context.Context, userID string) (domain.RecipeListResponse, error) {
	recipes, err := s.recipeRepository.GetLikedRecipes(ctx, userID)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	return domain.RecipeListResponse{
		Recipes: toRecipeList(recipes),
		Total:   len(recipes),
	}, nil
}

func toRecipe(recipe *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Description: recipe.Description,
		Difficulty:  recipe.Difficulty,
		TimeMinutes: recipe.TimeMinutes,
		CreatedAt:   recipe.CreatedAt,
	}
}

func toRecipeList(recipes []*entities.Recipe) []domain.Recipe {
	result := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipe(recipe))
	}
	return result
}

func toRecipeDetail(recipe *entities.Recipe) domain.RecipeDetail {
	return domain.RecipeDetail{
		Recipe:       toRecipe(recipe),
		Ingredients:  splitList(recipe.Ingredients, ","),
		Instructions: splitList(recipe.Instructions, instructionDelimiter),
		Image:        recipe.Image,
	}
}

func splitList(raw, delimiter string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, delimiter)
}
