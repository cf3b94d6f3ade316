package recipe

import (
	"context"
	"time"

	"recipeshare/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipeWithOwner(ctx context.Context, recipe *entities.Recipe, ownerID uuid.UUID) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		SearchRecipes(ctx context.Context, pattern string) ([]*entities.Recipe, error)
		GetOwnedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		CreateLike(ctx context.Context, userID, recipeID uuid.UUID) error
		GetLikedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipeWithOwner inserts the recipe and its ownership row in one
// transaction so no recipe ever exists without an owner.
func (r *recipeRepository) CreateRecipeWithOwner(ctx context.Context, recipe *entities.Recipe, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}

		owner := entities.RecipeOwner{
			ID:        uuid.New(),
			UserID:    ownerID,
			RecipeID:  recipe.ID,
			CreatedAt: time.Now(),
		}
		return tx.Create(&owner).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) SearchRecipes(ctx context.Context, pattern string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+pattern+"%").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetOwnedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN recipe_owners ON recipes.id = recipe_owners.recipe_id").
		Where("recipe_owners.user_id = ?", userID).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// CreateLike inserts unconditionally; repeat likes are allowed.
func (r *recipeRepository) CreateLike(ctx context.Context, userID, recipeID uuid.UUID) error {
	like := entities.Like{
		ID:        uuid.New(),
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(&like).Error
}

func (r *recipeRepository) GetLikedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN likes ON recipes.id = likes.recipe_id").
		Where("likes.user_id = ?", userID).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
