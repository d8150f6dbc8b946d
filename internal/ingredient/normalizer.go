package ingredient

import (
	"fmt"
	"strings"
)

// Line is a single free-text ingredient entry as it appears in a recipe.
type Line struct {
	Name     string
	Quantity string
	Unit     string
	Category string
}

// Item is the canonical form of a Line: the merge key for shopping list
// aggregation is (Name, Unit).
type Item struct {
	Name     string
	Quantity Quantity
	Unit     string
	Category string
}

// ParseError signals an unparseable quantity string. The ingredient is still
// usable (name, unit and category normalize independently); callers decide
// whether to surface or degrade.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable quantity %q", e.Input)
}

// DefaultCategory is assigned when a line carries no recognizable category.
const DefaultCategory = "Other"

// CountUnit is the canonical dimensionless unit. An empty unit string
// normalizes to it, so "2 eggs" and "2 piece eggs" merge.
const CountUnit = "piece"

var unitAliases = map[string]string{
	"g":           "g",
	"gram":        "g",
	"grams":       "g",
	"kg":          "kg",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"mg":          "mg",
	"ml":          "ml",
	"milliliter":  "ml",
	"milliliters": "ml",
	"l":           "l",
	"liter":       "l",
	"liters":      "l",
	"litre":       "l",
	"litres":      "l",
	"cup":         "cup",
	"cups":        "cup",
	"tbsp":        "tbsp",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"tsp":         "tsp",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"lb":          "lb",
	"lbs":         "lb",
	"pound":       "lb",
	"pounds":      "lb",
	"oz":          "oz",
	"ounce":       "oz",
	"ounces":      "oz",
	"piece":       "piece",
	"pieces":      "piece",
	"pc":          "piece",
	"pcs":         "piece",
	"pinch":       "pinch",
	"pinches":     "pinch",
	"clove":       "clove",
	"cloves":      "clove",
	"slice":       "slice",
	"slices":      "slice",
	"can":         "can",
	"cans":        "can",
	"bunch":       "bunch",
	"bunches":     "bunch",
}

var categoryAliases = map[string]string{
	"produce":    "Produce",
	"vegetables": "Produce",
	"vegetable":  "Produce",
	"fruit":      "Produce",
	"fruits":     "Produce",
	"dairy":      "Dairy",
	"meat":       "Meat",
	"poultry":    "Meat",
	"seafood":    "Seafood",
	"fish":       "Seafood",
	"bakery":     "Bakery",
	"bread":      "Bakery",
	"pantry":     "Pantry",
	"dry goods":  "Pantry",
	"baking":     "Pantry",
	"frozen":     "Frozen",
	"beverages":  "Beverages",
	"beverage":   "Beverages",
	"drinks":     "Beverages",
	"spices":     "Spices",
	"spice":      "Spices",
	"herbs":      "Spices",
	"seasoning":  "Spices",
	"other":      "Other",
	"general":    "Other",
}

// Normalize canonicalizes a single ingredient line. It is a pure function.
//
// When the quantity does not parse, the returned Item is still fully
// normalized (zero quantity) and the error is a *ParseError, so callers can
// keep the ingredient visible instead of dropping it.
func Normalize(line Line) (Item, error) {
	item := Item{
		Name:     NormalizeName(line.Name),
		Unit:     NormalizeUnit(line.Unit),
		Category: NormalizeCategory(line.Category),
		Quantity: Zero,
	}

	qty, err := ParseQuantity(line.Quantity)
	if err != nil {
		return item, err
	}
	item.Quantity = qty
	return item, nil
}

// NormalizeName lower-cases, trims and collapses inner whitespace so that
// "Egg " and "egg" produce the same merge key.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// NormalizeUnit maps a unit string onto the canonical enumeration. Unknown
// units pass through lower-cased and trimmed: two lines sharing the same
// unknown unit still merge, while a known unit never silently converts into
// an unknown one.
func NormalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		return CountUnit
	}
	u = strings.TrimSuffix(u, ".")
	if canonical, ok := unitAliases[u]; ok {
		return canonical
	}
	return u
}

// NormalizeCategory maps a category label onto the fixed set, defaulting to
// DefaultCategory for anything unrecognized.
func NormalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		return DefaultCategory
	}
	if canonical, ok := categoryAliases[c]; ok {
		return canonical
	}
	return DefaultCategory
}

// SameIngredient reports whether two normalized items merge into one
// shopping list entry: equal name keys and equal canonical units. Lines with
// the same name but incompatible units (g vs piece) stay separate rather
// than risk a wrong unit conversion.
func SameIngredient(a, b Item) bool {
	return a.Name == b.Name && a.Unit == b.Unit
}
