package cookbook

import (
	"context"
	"errors"

	"recipeshare/domain"
	"recipeshare/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CookbookService interface {
		CreateCookbook(ctx context.Context, req domain.CreateCookbookRequest, userID string) (domain.CookbookResponse, error)
		RequireOwnership(ctx context.Context, userID, cookbookID string) error
		GetCookbookRecipes(ctx context.Context, cookbookID, userID string) (domain.CookbookRecipesResponse, error)
		GetOwnedCookbooks(ctx context.Context, userID string) ([]domain.CookbookResponse, error)
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) error
	}

	cookbookService struct {
		cookbookRepository CookbookRepository
	}
)

func NewCookbookService(cookbookRepository CookbookRepository) CookbookService {
	return &cookbookService{cookbookRepository: cookbookRepository}
}

func (s *cookbookService) CreateCookbook(ctx context.Context, req domain.CreateCookbookRequest, userID string) (domain.CookbookResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CookbookResponse{}, domain.ErrParseUUID
	}

	cookbook := entities.Cookbook{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := s.cookbookRepository.CreateCookbookWithOwner(ctx, &cookbook, ownerID); err != nil {
		return domain.CookbookResponse{}, err
	}

	return domain.CookbookResponse{
		ID:   cookbook.ID.String(),
		Name: cookbook.Name,
	}, nil
}

// RequireOwnership is the single authorization primitive for cookbook access.
// A missing cookbook and a cookbook owned by someone else are distinct
// failures; callers decide how those surface.
func (s *cookbookService) RequireOwnership(ctx context.Context, userID, cookbookID string) error {
	owner, err := s.cookbookRepository.GetCookbookOwner(ctx, cookbookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCookbookNotFound
		}
		return err
	}

	if owner.UserID.String() != userID {
		return domain.ErrNotCookbookOwner
	}
	return nil
}

func (s *cookbookService) GetCookbookRecipes(ctx context.Context, cookbookID, userID string) (domain.CookbookRecipesResponse, error) {
	if err := s.RequireOwnership(ctx, userID, cookbookID); err != nil {
		return domain.CookbookRecipesResponse{}, err
	}

	cookbook, err := s.cookbookRepository.GetCookbookByID(ctx, cookbookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookbookRecipesResponse{}, domain.ErrCookbookNotFound
		}
		return domain.CookbookRecipesResponse{}, err
	}

	recipes, err := s.cookbookRepository.GetCookbookRecipes(ctx, cookbookID)
	if err != nil {
		return domain.CookbookRecipesResponse{}, err
	}

	result := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, domain.Recipe{
			ID:          recipe.ID.String(),
			Name:        recipe.Name,
			Description: recipe.Description,
			Difficulty:  recipe.Difficulty,
			TimeMinutes: recipe.TimeMinutes,
			CreatedAt:   recipe.CreatedAt,
		})
	}

	return domain.CookbookRecipesResponse{
		Cookbook: domain.CookbookResponse{
			ID:   cookbook.ID.String(),
			Name: cookbook.Name,
		},
		Recipes: result,
	}, nil
}

func (s *cookbookService) GetOwnedCookbooks(ctx context.Context, userID string) ([]domain.CookbookResponse, error) {
	cookbooks, err := s.cookbookRepository.GetOwnedCookbooks(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CookbookResponse, 0, len(cookbooks))
	for _, cookbook := range cookbooks {
		result = append(result, domain.CookbookResponse{
			ID:   cookbook.ID.String(),
			Name: cookbook.Name,
		})
	}
	return result, nil
}

func (s *cookbookService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) error {
	if err := s.RequireOwnership(ctx, userID, req.CookbookID); err != nil {
		return err
	}

	cookbookID, err := uuid.Parse(req.CookbookID)
	if err != nil {
		return domain.ErrParseUUID
	}
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.cookbookRepository.CreateSavedRecipe(ctx, cookbookID, recipeID)
}
