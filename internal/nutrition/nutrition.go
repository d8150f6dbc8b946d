package nutrition

import "recipehub/internal/catalog"

// Summary is the totalled nutrition profile for a plan. It is a pure derived
// value, recomputed on demand and never persisted.
type Summary struct {
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
	MealsCount    int     `json:"meals_count"`
}

// MealContribution is one planned meal's share: per-serving facts times the
// absolute serving count.
type MealContribution struct {
	Servings   int
	PerServing catalog.Nutrition
}

// Summarize totals the contributions of all resolvable planned meals. Totals
// are the literal sum of per-meal contributions with no intermediate
// rounding; presentation-layer rounding is the caller's concern.
func Summarize(meals []MealContribution) Summary {
	var s Summary
	for _, meal := range meals {
		servings := float64(meal.Servings)
		s.TotalCalories += meal.PerServing.Calories * servings
		s.TotalProtein += meal.PerServing.Protein * servings
		s.TotalCarbs += meal.PerServing.Carbs * servings
		s.TotalFat += meal.PerServing.Fat * servings
		s.MealsCount++
	}
	return s
}
