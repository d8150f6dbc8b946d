package mealplan

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"recipehub/internal/mealplan/plan_db"
)

// Repository is a database-backed repository for meal plans and their
// planned meals.
type Repository struct {
	queries *plan_db.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: plan_db.New(d),
		db:      d,
	}
}

// Create validates and inserts a new meal plan for the given user.
func (r *Repository) Create(ctx context.Context, plan *MealPlan) (*MealPlan, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	row, err := r.queries.InsertMealPlan(ctx, plan_db.InsertMealPlanParams{
		UserID:      plan.UserID,
		Name:        plan.Name,
		Description: plan.Description,
		StartDate:   plan.StartDate,
		EndDate:     plan.EndDate,
		IsPublic:    plan.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert meal plan: %w", err)
	}

	created := fromDBPlan(row)
	created.PlannedMeals = []PlannedMeal{}
	return &created, nil
}

// Get retrieves a plan with its planned meals. Returns ErrNotFound when the
// plan does not exist or belongs to a different user.
func (r *Repository) Get(ctx context.Context, planID int64, userID string) (*MealPlan, error) {
	row, err := r.queries.GetMealPlan(ctx, plan_db.GetMealPlanParams{ID: planID, UserID: userID})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}

	plan := fromDBPlan(row)
	meals, err := r.ListMeals(ctx, planID)
	if err != nil {
		return nil, err
	}
	plan.PlannedMeals = meals
	return &plan, nil
}

// Update applies a partial update to a plan and revalidates the result.
// Shrinking the date range does not move or drop planned meals; existing
// meals keep their dates.
func (r *Repository) Update(ctx context.Context, planID int64, userID string, upd PlanUpdate) (*MealPlan, error) {
	plan, err := r.Get(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		plan.Name = *upd.Name
	}
	if upd.Description != nil {
		plan.Description = *upd.Description
	}
	if upd.StartDate != nil {
		plan.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		plan.EndDate = *upd.EndDate
	}
	if upd.IsPublic != nil {
		plan.IsPublic = *upd.IsPublic
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	row, err := r.queries.UpdateMealPlan(ctx, plan_db.UpdateMealPlanParams{
		Name:        plan.Name,
		Description: plan.Description,
		StartDate:   plan.StartDate,
		EndDate:     plan.EndDate,
		IsPublic:    plan.IsPublic,
		UpdatedAt:   time.Now().UTC(),
		ID:          planID,
		UserID:      userID,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update meal plan: %w", err)
	}

	updated := fromDBPlan(row)
	updated.PlannedMeals = plan.PlannedMeals
	return &updated, nil
}

// List retrieves the user's plans, most recent first. Planned meals are not
// expanded.
func (r *Repository) List(ctx context.Context, userID string, limit, offset int) ([]MealPlan, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.queries.ListMealPlansByUser(ctx, plan_db.ListMealPlansByUserParams{
		UserID: userID,
		Limit:  int64(limit),
		Offset: int64(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}

	plans := make([]MealPlan, 0, len(rows))
	for _, row := range rows {
		plans = append(plans, fromDBPlan(row))
	}
	return plans, nil
}

// Delete removes a plan; planned meals and any derived shopping list go with
// it via cascade.
func (r *Repository) Delete(ctx context.Context, planID int64, userID string) error {
	affected, err := r.queries.DeleteMealPlan(ctx, plan_db.DeleteMealPlanParams{ID: planID, UserID: userID})
	if err != nil {
		return fmt.Errorf("failed to delete meal plan: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddMeal validates and inserts a planned meal into an existing plan.
func (r *Repository) AddMeal(ctx context.Context, planID int64, userID string, meal *PlannedMeal) (*PlannedMeal, error) {
	plan, err := r.Get(ctx, planID, userID)
	if err != nil {
		return nil, err
	}
	if err := meal.ValidateFor(plan); err != nil {
		return nil, err
	}

	row, err := r.queries.InsertPlannedMeal(ctx, plan_db.InsertPlannedMealParams{
		MealPlanID: planID,
		RecipeID:   meal.RecipeID,
		MealDate:   meal.MealDate,
		MealType:   string(meal.MealType),
		Servings:   int64(meal.Servings),
		Notes:      meal.Notes,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert planned meal: %w", err)
	}

	created := fromDBMeal(row)
	return &created, nil
}

// UpdateMeal applies a partial update to a planned meal, scoped to the
// owning user, and revalidates it against its plan's date range. The stored
// shopping list is not touched; it goes stale until the next regeneration.
func (r *Repository) UpdateMeal(ctx context.Context, mealID int64, userID string, upd MealUpdate) (*PlannedMeal, error) {
	row, err := r.queries.GetPlannedMealForUser(ctx, plan_db.GetPlannedMealForUserParams{
		ID:     mealID,
		UserID: userID,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get planned meal: %w", err)
	}
	meal := fromDBMeal(row)

	if upd.RecipeID != nil {
		meal.RecipeID = *upd.RecipeID
	}
	if upd.MealDate != nil {
		meal.MealDate = *upd.MealDate
	}
	if upd.MealType != nil {
		meal.MealType = MealType(*upd.MealType)
	}
	if upd.Servings != nil {
		meal.Servings = *upd.Servings
	}
	if upd.Notes != nil {
		meal.Notes = *upd.Notes
	}

	plan, err := r.Get(ctx, meal.MealPlanID, userID)
	if err != nil {
		return nil, err
	}
	if err := meal.ValidateFor(plan); err != nil {
		return nil, err
	}

	updatedRow, err := r.queries.UpdatePlannedMeal(ctx, plan_db.UpdatePlannedMealParams{
		RecipeID: meal.RecipeID,
		MealDate: meal.MealDate,
		MealType: string(meal.MealType),
		Servings: int64(meal.Servings),
		Notes:    meal.Notes,
		ID:       mealID,
		UserID:   userID,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update planned meal: %w", err)
	}

	updated := fromDBMeal(updatedRow)
	return &updated, nil
}

// ListMeals retrieves the planned meals of a plan ordered by date.
func (r *Repository) ListMeals(ctx context.Context, planID int64) ([]PlannedMeal, error) {
	rows, err := r.queries.ListPlannedMealsByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list planned meals: %w", err)
	}

	meals := make([]PlannedMeal, 0, len(rows))
	for _, row := range rows {
		meals = append(meals, fromDBMeal(row))
	}
	return meals, nil
}

// DeleteMeal removes a planned meal, scoped to the owning user.
func (r *Repository) DeleteMeal(ctx context.Context, mealID int64, userID string) error {
	affected, err := r.queries.DeletePlannedMealForUser(ctx, plan_db.DeletePlannedMealForUserParams{
		ID:     mealID,
		UserID: userID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete planned meal: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func fromDBPlan(row plan_db.MealPlan) MealPlan {
	return MealPlan{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Description: row.Description,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		IsPublic:    row.IsPublic,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func fromDBMeal(row plan_db.PlannedMeal) PlannedMeal {
	return PlannedMeal{
		ID:         row.ID,
		MealPlanID: row.MealPlanID,
		RecipeID:   row.RecipeID,
		MealDate:   row.MealDate,
		MealType:   MealType(row.MealType),
		Servings:   int(row.Servings),
		Notes:      row.Notes,
		CreatedAt:  row.CreatedAt,
	}
}
