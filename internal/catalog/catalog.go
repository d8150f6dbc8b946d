package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"recipehub/internal/auth"
	"recipehub/internal/ingredient"
)

// Ingredient is one line of a recipe's ingredient list as the catalog
// serves it, before normalization.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
}

// Nutrition holds per-serving nutrition facts.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Recipe is the read-only view of a recipe owned by the catalog. It is
// referenced by ID from planned meals and never copied into a plan.
type Recipe struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	BaseServings        int          `json:"base_servings"`
	Ingredients         []Ingredient `json:"ingredients"`
	NutritionPerServing Nutrition    `json:"nutrition_per_serving"`
}

// NormalizedIngredients canonicalizes every ingredient line. Lines whose
// quantity fails to parse are returned with zero quantity together with
// their *ingredient.ParseError, keyed by line index.
func (r *Recipe) NormalizedIngredients() ([]ingredient.Item, map[int]error) {
	items := make([]ingredient.Item, 0, len(r.Ingredients))
	var failures map[int]error
	for i, line := range r.Ingredients {
		item, err := ingredient.Normalize(ingredient.Line{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
			Category: line.Category,
		})
		if err != nil {
			if failures == nil {
				failures = make(map[int]error)
			}
			failures[i] = err
		}
		items = append(items, item)
	}
	return items, failures
}

// ErrRecipeNotFound is returned when the catalog has no recipe for an ID
// (deleted or never existed).
var ErrRecipeNotFound = errors.New("recipe not found in catalog")

// Client is an interface for the recipe catalog. The catalog is an external
// collaborator: read-only, no write contract.
type Client interface {
	GetRecipe(ctx context.Context, recipeID string) (*Recipe, error)
}

// httpClient is the concrete HTTP implementation of the catalog client.
type httpClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string) Client {
	return &httpClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

// GetRecipe fetches a single recipe. The caller's bearer credential is taken
// from the request context and forwarded as the Authorization header.
func (c *httpClient) GetRecipe(ctx context.Context, recipeID string) (*Recipe, error) {
	url := fmt.Sprintf("%s/recipes/%s", c.baseURL, recipeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	if creds, ok := auth.FromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipe %s: %w", recipeID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound, http.StatusGone:
		return nil, ErrRecipeNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("catalog returned status %d for recipe %s: %s", resp.StatusCode, recipeID, body)
	}

	var rec Recipe
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode recipe %s: %w", recipeID, err)
	}
	if rec.ID == "" {
		rec.ID = recipeID
	}
	return &rec, nil
}
