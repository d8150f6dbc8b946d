package app

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"recipehub/internal/catalog"
	"recipehub/internal/database"
	"recipehub/internal/mealplan"
	"recipehub/internal/shopping"
)

// fakeCatalog serves recipes from a map, standing in for the external
// catalog service.
type fakeCatalog struct {
	mu      sync.Mutex
	recipes map[string]*catalog.Recipe
	calls   int
}

func (f *fakeCatalog) GetRecipe(ctx context.Context, recipeID string) (*catalog.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	rec, ok := f.recipes[recipeID]
	if !ok {
		return nil, catalog.ErrRecipeNotFound
	}
	return rec, nil
}

func eggRecipe(id string) *catalog.Recipe {
	return &catalog.Recipe{
		ID:           id,
		Title:        "Recipe " + id,
		BaseServings: 2,
		Ingredients: []catalog.Ingredient{
			{Name: "Eggs", Quantity: "2", Unit: "", Category: "Dairy"},
		},
		NutritionPerServing: catalog.Nutrition{Calories: 100, Protein: 10, Carbs: 5, Fat: 6},
	}
}

func newTestApp(t *testing.T, recipes map[string]*catalog.Recipe) (*App, *mealplan.Repository) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "app_test.db")
	db, err := database.NewDB(dbPath)
	if err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	planRepo := mealplan.NewRepository(db.SQL)
	shoppingRepo := shopping.NewRepository(db.SQL)
	return NewApp(&fakeCatalog{recipes: recipes}, planRepo, shoppingRepo), planRepo
}

func buildPlan(t *testing.T, plans *mealplan.Repository, meals []mealplan.PlannedMeal) *mealplan.MealPlan {
	t.Helper()
	ctx := context.Background()
	plan, err := plans.Create(ctx, &mealplan.MealPlan{
		UserID:    "u1",
		Name:      "Week 2",
		StartDate: "2026-01-05",
		EndDate:   "2026-01-11",
	})
	if err != nil {
		t.Fatalf("failed to create plan: %v", err)
	}
	for i := range meals {
		if _, err := plans.AddMeal(ctx, plan.ID, "u1", &meals[i]); err != nil {
			t.Fatalf("failed to add meal: %v", err)
		}
	}
	full, err := plans.Get(ctx, plan.ID, "u1")
	if err != nil {
		t.Fatalf("failed to reload plan: %v", err)
	}
	return full
}

func TestGenerateShoppingListMergesAcrossRecipes(t *testing.T) {
	// Recipes A and B both require "2 eggs" at base serving 2; planning each
	// for 2 servings yields one aggregated 4-piece item.
	app, plans := newTestApp(t, map[string]*catalog.Recipe{
		"A": eggRecipe("A"),
		"B": eggRecipe("B"),
	})
	plan := buildPlan(t, plans, []mealplan.PlannedMeal{
		{RecipeID: "A", MealDate: "2026-01-05", MealType: mealplan.Dinner, Servings: 2},
		{RecipeID: "B", MealDate: "2026-01-06", MealType: mealplan.Dinner, Servings: 2},
	})

	result, err := app.GenerateShoppingList(context.Background(), plan.ID, "u1")
	if err != nil {
		t.Fatalf("GenerateShoppingList failed: %v", err)
	}
	if len(result.SkippedMealIDs) != 0 {
		t.Errorf("expected no skipped meals, got %v", result.SkippedMealIDs)
	}
	if len(result.List.Items) != 1 {
		t.Fatalf("expected 1 merged item, got %d", len(result.List.Items))
	}
	item := result.List.Items[0]
	if item.IngredientName != "eggs" || item.Quantity != "4" || item.Unit != "piece" {
		t.Errorf("got item %+v, want 4 piece eggs", item)
	}
}

func TestGenerateShoppingListSkipsDeletedRecipe(t *testing.T) {
	app, plans := newTestApp(t, map[string]*catalog.Recipe{"A": eggRecipe("A")})
	plan := buildPlan(t, plans, []mealplan.PlannedMeal{
		{RecipeID: "A", MealDate: "2026-01-05", MealType: mealplan.Lunch, Servings: 2},
		{RecipeID: "deleted", MealDate: "2026-01-06", MealType: mealplan.Dinner, Servings: 4},
	})

	result, err := app.GenerateShoppingList(context.Background(), plan.ID, "u1")
	if err != nil {
		t.Fatalf("generation must survive an unresolvable recipe: %v", err)
	}
	if len(result.SkippedMealIDs) != 1 {
		t.Fatalf("expected 1 skipped meal, got %v", result.SkippedMealIDs)
	}
	if result.SkippedMealIDs[0] != plan.PlannedMeals[1].ID {
		t.Errorf("skipped %v, want meal %d", result.SkippedMealIDs, plan.PlannedMeals[1].ID)
	}
	// Only the resolvable meal's ingredients appear.
	if len(result.List.Items) != 1 || result.List.Items[0].Quantity != "2" {
		t.Errorf("list should hold only recipe A's eggs, got %+v", result.List.Items)
	}
}

func TestGenerateShoppingListIdempotence(t *testing.T) {
	app, plans := newTestApp(t, map[string]*catalog.Recipe{
		"A": eggRecipe("A"),
		"B": eggRecipe("B"),
	})
	plan := buildPlan(t, plans, []mealplan.PlannedMeal{
		{RecipeID: "A", MealDate: "2026-01-05", MealType: mealplan.Breakfast, Servings: 3},
		{RecipeID: "B", MealDate: "2026-01-07", MealType: mealplan.Snack, Servings: 1},
	})

	ctx := context.Background()
	first, err := app.GenerateShoppingList(ctx, plan.ID, "u1")
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	second, err := app.GenerateShoppingList(ctx, plan.ID, "u1")
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}

	if len(first.List.Items) != len(second.List.Items) {
		t.Fatalf("item counts differ: %d vs %d", len(first.List.Items), len(second.List.Items))
	}
	for i := range first.List.Items {
		a, b := first.List.Items[i], second.List.Items[i]
		if a.IngredientName != b.IngredientName || a.Unit != b.Unit || a.Quantity != b.Quantity || a.Category != b.Category {
			t.Errorf("item %d differs between generations: %+v vs %+v", i, a, b)
		}
	}
}

func TestGenerateShoppingListUnknownPlan(t *testing.T) {
	app, _ := newTestApp(t, nil)
	if _, err := app.GenerateShoppingList(context.Background(), 777, "u1"); !errors.Is(err, mealplan.ErrNotFound) {
		t.Errorf("expected mealplan.ErrNotFound, got %v", err)
	}
}

func TestConcurrentGenerations(t *testing.T) {
	app, plans := newTestApp(t, map[string]*catalog.Recipe{"A": eggRecipe("A")})
	plan := buildPlan(t, plans, []mealplan.PlannedMeal{
		{RecipeID: "A", MealDate: "2026-01-05", MealType: mealplan.Dinner, Servings: 2},
	})

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = app.GenerateShoppingList(context.Background(), plan.ID, "u1")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("generation %d failed: %v", i, err)
		}
	}

	// The stored list reflects exactly one generation's output.
	list, err := app.GetShoppingList(context.Background(), plan.ID, "u1")
	if err != nil {
		t.Fatalf("GetShoppingList failed: %v", err)
	}
	if len(list.Items) != 1 {
		t.Errorf("expected 1 item after concurrent generations, got %d", len(list.Items))
	}
}

func TestNutritionSummary(t *testing.T) {
	app, plans := newTestApp(t, map[string]*catalog.Recipe{
		"A": eggRecipe("A"),
		"B": eggRecipe("B"),
	})
	plan := buildPlan(t, plans, []mealplan.PlannedMeal{
		{RecipeID: "A", MealDate: "2026-01-05", MealType: mealplan.Dinner, Servings: 2},
		{RecipeID: "B", MealDate: "2026-01-06", MealType: mealplan.Dinner, Servings: 3},
		{RecipeID: "gone", MealDate: "2026-01-07", MealType: mealplan.Lunch, Servings: 1},
	})

	result, err := app.NutritionSummary(context.Background(), plan.ID, "u1")
	if err != nil {
		t.Fatalf("NutritionSummary failed: %v", err)
	}
	if result.Summary.MealsCount != 2 {
		t.Errorf("MealsCount = %d, want 2 (unresolvable meal excluded)", result.Summary.MealsCount)
	}
	// 2 servings * 100 + 3 servings * 100.
	if result.Summary.TotalCalories != 500 {
		t.Errorf("TotalCalories = %v, want 500", result.Summary.TotalCalories)
	}
	if len(result.SkippedMealIDs) != 1 {
		t.Errorf("expected 1 skipped meal, got %v", result.SkippedMealIDs)
	}
}

func TestRegenerationNotAutoKeptInSync(t *testing.T) {
	// Editing the plan after generation does not touch the stored list; only
	// an explicit regeneration does.
	app, plans := newTestApp(t, map[string]*catalog.Recipe{"A": eggRecipe("A"), "B": eggRecipe("B")})
	plan := buildPlan(t, plans, []mealplan.PlannedMeal{
		{RecipeID: "A", MealDate: "2026-01-05", MealType: mealplan.Dinner, Servings: 2},
	})

	ctx := context.Background()
	if _, err := app.GenerateShoppingList(ctx, plan.ID, "u1"); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	if _, err := plans.AddMeal(ctx, plan.ID, "u1", &mealplan.PlannedMeal{
		RecipeID: "B", MealDate: "2026-01-06", MealType: mealplan.Dinner, Servings: 2,
	}); err != nil {
		t.Fatalf("AddMeal failed: %v", err)
	}

	stale, err := app.GetShoppingList(ctx, plan.ID, "u1")
	if err != nil {
		t.Fatalf("GetShoppingList failed: %v", err)
	}
	if stale.Items[0].Quantity != "2" {
		t.Errorf("stored list changed without regeneration: %+v", stale.Items)
	}

	fresh, err := app.GenerateShoppingList(ctx, plan.ID, "u1")
	if err != nil {
		t.Fatalf("regeneration failed: %v", err)
	}
	if fresh.List.Items[0].Quantity != "4" {
		t.Errorf("regenerated quantity = %q, want %q", fresh.List.Items[0].Quantity, "4")
	}
}
