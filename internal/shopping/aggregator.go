package shopping

import (
	"errors"
	"fmt"
	"sort"

	"recipehub/internal/catalog"
	"recipehub/internal/ingredient"
)

// PlannedRecipe pairs a planned meal's serving count with its resolved
// recipe. Resolution (and its partial failures) happens upstream; the
// aggregator only sees meals whose recipes exist.
type PlannedRecipe struct {
	Servings int
	Recipe   *catalog.Recipe
}

type groupKey struct {
	name string
	unit string
}

type group struct {
	item        ingredient.Item
	parseFailed bool
	badInputs   []string
}

// Aggregate merges the ingredient lines of all resolved meals into one
// deduplicated item list. Pure function over the snapshot: scaling is exact
// rational arithmetic, so generating twice from the same inputs yields the
// same items, and scaling every meal's servings by k scales every quantity
// by exactly k.
//
// Lines whose quantity cannot be parsed are kept with quantity 0 and a
// warning note rather than dropped, so the user sees them.
func Aggregate(meals []PlannedRecipe) []ShoppingListItem {
	groups := make(map[groupKey]*group)
	var keyOrder []groupKey
	categoryRank := make(map[string]int)

	for _, meal := range meals {
		base := meal.Recipe.BaseServings
		if base <= 0 {
			base = 1
		}
		scale := ingredient.NewQuantity(int64(meal.Servings), int64(base))

		items, failures := meal.Recipe.NormalizedIngredients()
		for i, item := range items {
			key := groupKey{name: item.Name, unit: item.Unit}
			g, ok := groups[key]
			if !ok {
				g = &group{item: ingredient.Item{
					Name:     item.Name,
					Unit:     item.Unit,
					Category: item.Category,
					Quantity: ingredient.Zero,
				}}
				groups[key] = g
				keyOrder = append(keyOrder, key)
				if _, seen := categoryRank[item.Category]; !seen {
					categoryRank[item.Category] = len(categoryRank)
				}
			}

			if err, failed := failures[i]; failed {
				g.parseFailed = true
				var parseErr *ingredient.ParseError
				if errors.As(err, &parseErr) {
					g.badInputs = append(g.badInputs, parseErr.Input)
				}
				continue
			}
			g.item.Quantity = g.item.Quantity.Add(item.Quantity.Mul(scale))
		}
	}

	// First-seen category order, then name ascending within a category.
	sort.SliceStable(keyOrder, func(a, b int) bool {
		ga, gb := groups[keyOrder[a]], groups[keyOrder[b]]
		if ga.item.Category != gb.item.Category {
			return categoryRank[ga.item.Category] < categoryRank[gb.item.Category]
		}
		return ga.item.Name < gb.item.Name
	})

	items := make([]ShoppingListItem, 0, len(keyOrder))
	for _, key := range keyOrder {
		g := groups[key]
		out := ShoppingListItem{
			IngredientName: g.item.Name,
			Quantity:       g.item.Quantity.String(),
			Unit:           g.item.Unit,
			Category:       g.item.Category,
		}
		if g.parseFailed {
			out.Notes = parseWarning(g.badInputs)
		}
		items = append(items, out)
	}
	return items
}

func parseWarning(inputs []string) string {
	if len(inputs) == 0 {
		return "some quantities could not be parsed; check the recipe"
	}
	return fmt.Sprintf("quantity %q could not be parsed; check the recipe", inputs[0])
}
