package cookbook

import (
	"context"
	"time"

	"recipeshare/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CookbookRepository interface {
		CreateCookbookWithOwner(ctx context.Context, cookbook *entities.Cookbook, ownerID uuid.UUID) error
		GetCookbookByID(ctx context.Context, id string) (*entities.Cookbook, error)
		GetCookbookOwner(ctx context.Context, cookbookID string) (*entities.CookbookOwner, error)
		GetOwnedCookbooks(ctx context.Context, userID string) ([]*entities.Cookbook, error)
		CreateSavedRecipe(ctx context.Context, cookbookID, recipeID uuid.UUID) error
		GetCookbookRecipes(ctx context.Context, cookbookID string) ([]*entities.Recipe, error)
	}

	cookbookRepository struct {
		db *gorm.DB
	}
)

func NewCookbookRepository(db *gorm.DB) CookbookRepository {
	return &cookbookRepository{db: db}
}

// CreateCookbookWithOwner inserts the cookbook and its ownership row in one
// transaction so no cookbook ever exists without an owner.
func (r *cookbookRepository) CreateCookbookWithOwner(ctx context.Context, cookbook *entities.Cookbook, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cookbook).Error; err != nil {
			return err
		}

		owner := entities.CookbookOwner{
			ID:         uuid.New(),
			UserID:     ownerID,
			CookbookID: cookbook.ID,
			CreatedAt:  time.Now(),
		}
		return tx.Create(&owner).Error
	})
}

func (r *cookbookRepository) GetCookbookByID(ctx context.Context, id string) (*entities.Cookbook, error) {
	var cookbook entities.Cookbook
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cookbook).Error; err != nil {
		return nil, err
	}
	return &cookbook, nil
}

func (r *cookbookRepository) GetCookbookOwner(ctx context.Context, cookbookID string) (*entities.CookbookOwner, error) {
	var owner entities.CookbookOwner
	if err := r.db.WithContext(ctx).Where("cookbook_id = ?", cookbookID).First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *cookbookRepository) GetOwnedCookbooks(ctx context.Context, userID string) ([]*entities.Cookbook, error) {
	var cookbooks []*entities.Cookbook
	if err := r.db.WithContext(ctx).
		Joins("JOIN cookbook_owners ON cookbooks.id = cookbook_owners.cookbook_id").
		Where("cookbook_owners.user_id = ?", userID).
		Find(&cookbooks).Error; err != nil {
		return nil, err
	}
	return cookbooks, nil
}

func (r *cookbookRepository) CreateSavedRecipe(ctx context.Context, cookbookID, recipeID uuid.UUID) error {
	saved := entities.SavedRecipe{
		ID:         uuid.New(),
		CookbookID: cookbookID,
		RecipeID:   recipeID,
		CreatedAt:  time.Now(),
	}
	return r.db.WithContext(ctx).Create(&saved).Error
}

func (r *cookbookRepository) GetCookbookRecipes(ctx context.Context, cookbookID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN saved_recipes ON recipes.id = saved_recipes.recipe_id").
		Where("saved_recipes.cookbook_id = ?", cookbookID).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
