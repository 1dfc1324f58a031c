package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeID is a UUID-based identifier for Recipe
type RecipeID string

// NewRecipeID generates a new UUID v4 RecipeID
func NewRecipeID() RecipeID {
	return RecipeID(uuid.New().String())
}

// Ingredient is a single named quantity within a recipe
type Ingredient struct {
	Name     string
	Quantity string
}

// Recipe is an append-only recipe registration. Product names are not
// guaranteed unique; lookups are case-insensitive substring matches with
// most-recent-created-first precedence.
type Recipe struct {
	ID              RecipeID
	CompanyID       CompanyID
	UserPhone       string `masq:"secret"`
	Product         string
	Ingredients     []Ingredient
	OriginalMessage string
	CreatedAt       time.Time
}
