package app

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"recipehub/internal/catalog"
	"recipehub/internal/mealplan"
	"recipehub/internal/nutrition"
	"recipehub/internal/shopping"
)

// App holds the application's dependencies and runs plan derivations.
type App struct {
	catalogClient catalog.Client
	planRepo      *mealplan.Repository
	shoppingRepo  *shopping.Repository

	// Concurrent generations for the same plan are collapsed into one
	// flight, so the stored list always reflects exactly one generation's
	// output.
	generations singleflight.Group
}

// NewApp creates and initializes a new App instance.
func NewApp(catalogClient catalog.Client, planRepo *mealplan.Repository, shoppingRepo *shopping.Repository) *App {
	return &App{
		catalogClient: catalogClient,
		planRepo:      planRepo,
		shoppingRepo:  shoppingRepo,
	}
}

// GenerationResult is the outcome of one shopping list generation. Meals
// whose recipes could not be resolved are excluded from the list and
// reported, not fatal.
type GenerationResult struct {
	List           *shopping.ShoppingList
	SkippedMealIDs []int64
}

// NutritionResult mirrors GenerationResult for nutrition summaries.
type NutritionResult struct {
	Summary        nutrition.Summary
	SkippedMealIDs []int64
}

type resolvedMeal struct {
	meal   mealplan.PlannedMeal
	recipe *catalog.Recipe
}

// GenerateShoppingList derives and persists a fresh shopping list for the
// plan, replacing any prior list. A second request for the same plan while a
// generation is in flight waits for and shares that generation's result.
func (a *App) GenerateShoppingList(ctx context.Context, planID int64, userID string) (*GenerationResult, error) {
	key := fmt.Sprintf("%s/%d", userID, planID)
	v, err, _ := a.generations.Do(key, func() (interface{}, error) {
		return a.generateShoppingList(ctx, planID, userID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*GenerationResult), nil
}

func (a *App) generateShoppingList(ctx context.Context, planID int64, userID string) (*GenerationResult, error) {
	plan, err := a.planRepo.Get(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	resolved, skipped := a.resolveMeals(ctx, plan.PlannedMeals)

	meals := make([]shopping.PlannedRecipe, 0, len(resolved))
	for _, rm := range resolved {
		meals = append(meals, shopping.PlannedRecipe{Servings: rm.meal.Servings, Recipe: rm.recipe})
	}
	items := shopping.Aggregate(meals)

	list, err := a.shoppingRepo.Replace(ctx, planID, fmt.Sprintf("Shopping List for %s", plan.Name), items)
	if err != nil {
		return nil, err
	}
	return &GenerationResult{List: list, SkippedMealIDs: skipped}, nil
}

// GetShoppingList returns the plan's current shopping list.
func (a *App) GetShoppingList(ctx context.Context, planID int64, userID string) (*shopping.ShoppingList, error) {
	if _, err := a.planRepo.Get(ctx, planID, userID); err != nil {
		return nil, err
	}
	return a.shoppingRepo.GetByMealPlanID(ctx, planID)
}

// NutritionSummary recomputes the plan's nutrition totals from its current
// contents. Nothing is persisted.
func (a *App) NutritionSummary(ctx context.Context, planID int64, userID string) (*NutritionResult, error) {
	plan, err := a.planRepo.Get(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	resolved, skipped := a.resolveMeals(ctx, plan.PlannedMeals)

	contribs := make([]nutrition.MealContribution, 0, len(resolved))
	for _, rm := range resolved {
		contribs = append(contribs, nutrition.MealContribution{
			Servings:   rm.meal.Servings,
			PerServing: rm.recipe.NutritionPerServing,
		})
	}
	return &NutritionResult{Summary: nutrition.Summarize(contribs), SkippedMealIDs: skipped}, nil
}

// SetItemPurchased updates one shopping list item's purchased flag.
func (a *App) SetItemPurchased(ctx context.Context, itemID int64, userID string, purchased bool) (*shopping.ShoppingListItem, error) {
	return a.shoppingRepo.SetPurchased(ctx, itemID, userID, purchased)
}

// resolveMeals fetches every meal's recipe from the catalog in parallel.
// Lookups are independent: a failed one is logged and its meal reported as
// skipped, never blocking the rest.
func (a *App) resolveMeals(ctx context.Context, meals []mealplan.PlannedMeal) ([]resolvedMeal, []int64) {
	type outcome struct {
		recipe *catalog.Recipe
		err    error
	}
	outcomes := make([]outcome, len(meals))

	var wg sync.WaitGroup
	for i, meal := range meals {
		wg.Add(1)
		go func(i int, recipeID string) {
			defer wg.Done()
			rec, err := a.catalogClient.GetRecipe(ctx, recipeID)
			outcomes[i] = outcome{recipe: rec, err: err}
		}(i, meal.RecipeID)
	}
	wg.Wait()

	resolved := make([]resolvedMeal, 0, len(meals))
	var skipped []int64
	for i, meal := range meals {
		if outcomes[i].err != nil {
			log.Printf("Skipping meal %d: recipe %s unavailable: %v", meal.ID, meal.RecipeID, outcomes[i].err)
			skipped = append(skipped, meal.ID)
			continue
		}
		resolved = append(resolved, resolvedMeal{meal: meal, recipe: outcomes[i].recipe})
	}
	sort.Slice(skipped, func(a, b int) bool { return skipped[a] < skipped[b] })
	return resolved, skipped
}
