package shopping

import (
	"errors"
	"time"
)

// ShoppingList is the derived, categorized shopping list for one meal plan.
// Each generation replaces the previous list wholesale; there is exactly one
// active list per plan.
type ShoppingList struct {
	ID         int64              `json:"id"`
	MealPlanID int64              `json:"meal_plan_id"`
	Name       string             `json:"name"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	Items      []ShoppingListItem `json:"items"`
}

// ShoppingListItem is one aggregated ingredient. Quantity is kept as a
// formatted string ("4", "1 1/2") paired with a separate unit field, so
// fractional amounts survive the trip to the UI.
type ShoppingListItem struct {
	ID             int64  `json:"id"`
	ShoppingListID int64  `json:"shopping_list_id"`
	IngredientName string `json:"ingredient_name"`
	Quantity       string `json:"quantity"`
	Unit           string `json:"unit"`
	Category       string `json:"category"`
	IsPurchased    bool   `json:"is_purchased"`
	Notes          string `json:"notes,omitempty"`
}

var (
	// ErrNotFound is returned when a list or item does not exist for the
	// caller.
	ErrNotFound = errors.New("shopping list not found")

	// ErrConflict is returned when a replace races with the plan being
	// deleted.
	ErrConflict = errors.New("shopping list generation conflict")
)
