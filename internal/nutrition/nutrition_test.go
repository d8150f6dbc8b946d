package nutrition

import (
	"testing"

	"recipehub/internal/catalog"
)

func TestSummarize(t *testing.T) {
	meals := []MealContribution{
		{Servings: 2, PerServing: catalog.Nutrition{Calories: 350, Protein: 12, Carbs: 40, Fat: 14}},
		{Servings: 1, PerServing: catalog.Nutrition{Calories: 500, Protein: 30, Carbs: 20, Fat: 25}},
	}

	s := Summarize(meals)
	if s.MealsCount != 2 {
		t.Errorf("MealsCount = %d, want 2", s.MealsCount)
	}
	if s.TotalCalories != 1200 {
		t.Errorf("TotalCalories = %v, want 1200", s.TotalCalories)
	}
	if s.TotalProtein != 54 {
		t.Errorf("TotalProtein = %v, want 54", s.TotalProtein)
	}
	if s.TotalCarbs != 100 {
		t.Errorf("TotalCarbs = %v, want 100", s.TotalCarbs)
	}
	if s.TotalFat != 53 {
		t.Errorf("TotalFat = %v, want 53", s.TotalFat)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.MealsCount != 0 || s.TotalCalories != 0 {
		t.Errorf("empty plan should produce a zero summary, got %+v", s)
	}
}

func TestSummarizeEqualsSumOfContributions(t *testing.T) {
	meals := []MealContribution{
		{Servings: 3, PerServing: catalog.Nutrition{Calories: 123.5, Protein: 7.25, Carbs: 11.75, Fat: 3.5}},
		{Servings: 2, PerServing: catalog.Nutrition{Calories: 410.25, Protein: 22.5, Carbs: 38.25, Fat: 18.75}},
		{Servings: 1, PerServing: catalog.Nutrition{Calories: 99.99, Protein: 4.44, Carbs: 12.12, Fat: 1.11}},
	}

	s := Summarize(meals)

	var calories, protein, carbs, fat float64
	for _, m := range meals {
		calories += m.PerServing.Calories * float64(m.Servings)
		protein += m.PerServing.Protein * float64(m.Servings)
		carbs += m.PerServing.Carbs * float64(m.Servings)
		fat += m.PerServing.Fat * float64(m.Servings)
	}

	if s.TotalCalories != calories || s.TotalProtein != protein || s.TotalCarbs != carbs || s.TotalFat != fat {
		t.Errorf("summary diverged from the sum of contributions: %+v", s)
	}
}

func TestSummarizeLinearity(t *testing.T) {
	meals := []MealContribution{
		{Servings: 1, PerServing: catalog.Nutrition{Calories: 350, Protein: 12, Carbs: 40, Fat: 14}},
		{Servings: 2, PerServing: catalog.Nutrition{Calories: 500, Protein: 30, Carbs: 20, Fat: 25}},
	}
	doubled := []MealContribution{
		{Servings: 2, PerServing: meals[0].PerServing},
		{Servings: 4, PerServing: meals[1].PerServing},
	}

	base := Summarize(meals)
	scaled := Summarize(doubled)

	if scaled.TotalCalories != 2*base.TotalCalories ||
		scaled.TotalProtein != 2*base.TotalProtein ||
		scaled.TotalCarbs != 2*base.TotalCarbs ||
		scaled.TotalFat != 2*base.TotalFat {
		t.Errorf("doubling servings should double totals: base %+v, scaled %+v", base, scaled)
	}
}
