package ingredient

import (
	"errors"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2", "2"},
		{" 2 ", "2"},
		{"1.5", "1 1/2"},
		{"0.5", "1/2"},
		{"0.25", "1/4"},
		{"1/2", "1/2"},
		{"3/4", "3/4"},
		{"1 1/2", "1 1/2"},
		{"2 3/4", "2 3/4"},
		{"4/2", "2"},
		{"0", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			q, err := ParseQuantity(tc.input)
			if err != nil {
				t.Fatalf("ParseQuantity(%q) failed: %v", tc.input, err)
			}
			if q.String() != tc.want {
				t.Errorf("ParseQuantity(%q) = %s, want %s", tc.input, q.String(), tc.want)
			}
		})
	}
}

func TestParseQuantityInvalid(t *testing.T) {
	for _, input := range []string{"", "  ", "two", "1/0", "1..5", "a/b", "1 cup"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseQuantity(input)
			if err == nil {
				t.Fatalf("ParseQuantity(%q) succeeded, expected ParseError", input)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("expected *ParseError, got %T", err)
			}
		})
	}
}

func TestQuantityArithmetic(t *testing.T) {
	half, _ := ParseQuantity("1/2")

	sum := half.Add(half).Add(half)
	if sum.String() != "1 1/2" {
		t.Errorf("1/2 * 3 = %s, want 1 1/2", sum.String())
	}

	scaled := sum.Mul(FromInt(2))
	if scaled.String() != "3" {
		t.Errorf("doubling 1 1/2 = %s, want 3", scaled.String())
	}

	third := NewQuantity(1, 3)
	if got := third.Add(third).Add(third); got.String() != "1" {
		t.Errorf("1/3 * 3 = %s, want 1", got.String())
	}
}

func TestNormalize(t *testing.T) {
	item, err := Normalize(Line{Name: "  Chicken  Breast ", Quantity: "2", Unit: "lbs", Category: "meat"})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if item.Name != "chicken breast" {
		t.Errorf("Name = %q, want %q", item.Name, "chicken breast")
	}
	if item.Unit != "lb" {
		t.Errorf("Unit = %q, want %q", item.Unit, "lb")
	}
	if item.Category != "Meat" {
		t.Errorf("Category = %q, want %q", item.Category, "Meat")
	}
	if item.Quantity.String() != "2" {
		t.Errorf("Quantity = %s, want 2", item.Quantity.String())
	}
}

func TestNormalizeUnitAliases(t *testing.T) {
	cases := map[string]string{
		"":            "piece",
		"pcs":         "piece",
		"Pieces":      "piece",
		"grams":       "g",
		"lbs":         "lb",
		"tablespoons": "tbsp",
		"tsp.":        "tsp",
		"Cups":        "cup",
		"litres":      "l",
		"handful":     "handful", // unknown units pass through
	}
	for input, want := range cases {
		if got := NormalizeUnit(input); got != want {
			t.Errorf("NormalizeUnit(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"":          "Other",
		"Produce":   "Produce",
		"VEGETABLE": "Produce",
		"fish":      "Seafood",
		"nonsense":  "Other",
		"General":   "Other",
	}
	for input, want := range cases {
		if got := NormalizeCategory(input); got != want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeUnparseableQuantity(t *testing.T) {
	item, err := Normalize(Line{Name: "Salt", Quantity: "a pinch", Unit: "", Category: ""})
	if err == nil {
		t.Fatal("expected ParseError for quantity 'a pinch'")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	// The rest of the line still normalizes so the item stays visible.
	if item.Name != "salt" {
		t.Errorf("Name = %q, want %q", item.Name, "salt")
	}
	if !item.Quantity.IsZero() {
		t.Errorf("Quantity = %s, want 0", item.Quantity.String())
	}
}

func TestSameIngredient(t *testing.T) {
	flourG, _ := Normalize(Line{Name: "Flour", Quantity: "500", Unit: "g"})
	flourG2, _ := Normalize(Line{Name: "flour ", Quantity: "100", Unit: "grams"})
	flourCup, _ := Normalize(Line{Name: "flour", Quantity: "2", Unit: "cups"})

	if !SameIngredient(flourG, flourG2) {
		t.Error("flour/g and flour/grams should merge")
	}
	if SameIngredient(flourG, flourCup) {
		t.Error("flour/g and flour/cup must never merge")
	}
}
