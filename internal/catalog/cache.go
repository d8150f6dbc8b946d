package catalog

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedClient wraps a Client with an in-memory LRU. Recipes change rarely
// relative to how often derivations read them, and a plan with seven dinners
// of the same recipe should hit the catalog once. Negative results are not
// cached: a recipe deleted and restored should reappear on the next
// generation.
type CachedClient struct {
	inner Client
	cache *lru.Cache[string, *Recipe]
}

// NewCachedClient wraps inner with an LRU of the given size.
func NewCachedClient(inner Client, size int) (*CachedClient, error) {
	cache, err := lru.New[string, *Recipe](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe cache: %w", err)
	}
	return &CachedClient{inner: inner, cache: cache}, nil
}

// GetRecipe returns a cached recipe if present, otherwise delegates.
func (c *CachedClient) GetRecipe(ctx context.Context, recipeID string) (*Recipe, error) {
	if rec, ok := c.cache.Get(recipeID); ok {
		return rec, nil
	}

	rec, err := c.inner.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	c.cache.Add(recipeID, rec)
	return rec, nil
}

// Invalidate drops a recipe from the cache.
func (c *CachedClient) Invalidate(recipeID string) {
	c.cache.Remove(recipeID)
}
