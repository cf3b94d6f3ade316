package entities

import (
	"github.com/google/uuid"
	"time"
)

type Cookbook struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"not null" json:"name"`

	Timestamp
}

type CookbookOwner struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"index" json:"user_id"`
	CookbookID uuid.UUID `gorm:"index" json:"cookbook_id"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	User     *User     `gorm:"foreignKey:UserID"`
	Cookbook *Cookbook `gorm:"foreignKey:CookbookID"`
}

type SavedRecipe struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CookbookID uuid.UUID `gorm:"index" json:"cookbook_id"`
	RecipeID   uuid.UUID `gorm:"index" json:"recipe_id"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	Cookbook *Cookbook `gorm:"foreignKey:CookbookID"`
	Recipe   *Recipe   `gorm:"foreignKey:RecipeID"`
}
