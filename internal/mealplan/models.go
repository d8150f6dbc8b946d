package mealplan

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used for plan boundaries
// and meal dates. Dates are compared as strings, which is safe for this
// layout.
const DateLayout = "2006-01-02"

// MealType is the slot a planned meal occupies within a day.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// ParseMealType validates a meal type string.
func ParseMealType(s string) (MealType, error) {
	switch MealType(s) {
	case Breakfast, Lunch, Dinner, Snack:
		return MealType(s), nil
	}
	return "", fmt.Errorf("%w: meal_type must be one of breakfast, lunch, dinner, snack", ErrInvalid)
}

// MealPlan is a time-boxed plan owned by a single user. It exclusively owns
// its planned meals.
type MealPlan struct {
	ID           int64         `json:"id"`
	UserID       string        `json:"user_id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	IsPublic     bool          `json:"is_public"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	PlannedMeals []PlannedMeal `json:"planned_meals"`
}

// PlannedMeal is one scheduled recipe occurrence within a plan.
type PlannedMeal struct {
	ID         int64     `json:"id"`
	MealPlanID int64     `json:"meal_plan_id"`
	RecipeID   string    `json:"recipe_id"`
	MealDate   string    `json:"meal_date"`
	MealType   MealType  `json:"meal_type"`
	Servings   int       `json:"servings"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PlanUpdate is a partial update of a meal plan. Nil fields are left
// untouched, matching PUT semantics where absent keys mean "keep".
type PlanUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsPublic    *bool   `json:"is_public"`
}

// MealUpdate is a partial update of a planned meal.
type MealUpdate struct {
	RecipeID *string `json:"recipe_id"`
	MealDate *string `json:"meal_date"`
	MealType *string `json:"meal_type"`
	Servings *int    `json:"servings"`
	Notes    *string `json:"notes"`
}

var (
	// ErrNotFound is returned when a plan or planned meal does not exist
	// (or belongs to another user, which callers cannot distinguish).
	ErrNotFound = errors.New("meal plan not found")

	// ErrInvalid wraps all validation failures.
	ErrInvalid = errors.New("invalid")
)

// Validate checks the plan-level invariants before persistence.
func (p *MealPlan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if err := validateDate(p.StartDate, "start_date"); err != nil {
		return err
	}
	if err := validateDate(p.EndDate, "end_date"); err != nil {
		return err
	}
	if p.StartDate > p.EndDate {
		return fmt.Errorf("%w: start_date must not be after end_date", ErrInvalid)
	}
	return nil
}

// ValidateFor checks a planned meal against its owning plan: date inside the
// plan range, positive servings, enumerated meal type.
func (m *PlannedMeal) ValidateFor(plan *MealPlan) error {
	if m.RecipeID == "" {
		return fmt.Errorf("%w: recipe_id is required", ErrInvalid)
	}
	if _, err := ParseMealType(string(m.MealType)); err != nil {
		return err
	}
	if m.Servings < 1 {
		return fmt.Errorf("%w: servings must be a positive integer", ErrInvalid)
	}
	if err := validateDate(m.MealDate, "meal_date"); err != nil {
		return err
	}
	if m.MealDate < plan.StartDate || m.MealDate > plan.EndDate {
		return fmt.Errorf("%w: meal_date %s is outside the plan range %s..%s",
			ErrInvalid, m.MealDate, plan.StartDate, plan.EndDate)
	}
	return nil
}

func validateDate(s, field string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("%w: %s must be an ISO-8601 date (YYYY-MM-DD)", ErrInvalid, field)
	}
	return nil
}
