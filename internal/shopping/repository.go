package shopping

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	shoppingdb "recipehub/internal/shopping/db"
)

// Repository handles persistence of shopping lists and their purchase state.
type Repository struct {
	queries *shoppingdb.Queries
	db      *sql.DB
}

// NewRepository creates a new shopping list repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: shoppingdb.New(d),
		db:      d,
	}
}

// Replace atomically swaps the plan's shopping list for a freshly generated
// one. Any prior list and its purchase state are discarded; the regenerated
// list is a new artifact with every item unpurchased. Returns ErrConflict if
// the plan disappeared while generating.
func (r *Repository) Replace(ctx context.Context, mealPlanID int64, name string, items []ShoppingListItem) (*ShoppingList, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)

	if _, err := q.PlanExists(ctx, mealPlanID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to check meal plan: %w", err)
	}

	if err := q.DeleteShoppingListByMealPlanID(ctx, mealPlanID); err != nil {
		return nil, fmt.Errorf("failed to delete prior shopping list: %w", err)
	}

	now := time.Now().UTC()
	dbList, err := q.InsertShoppingList(ctx, shoppingdb.InsertShoppingListParams{
		MealPlanID: mealPlanID,
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert shopping list: %w", err)
	}

	list := &ShoppingList{
		ID:         dbList.ID,
		MealPlanID: dbList.MealPlanID,
		Name:       dbList.Name,
		CreatedAt:  dbList.CreatedAt,
		UpdatedAt:  dbList.UpdatedAt,
		Items:      make([]ShoppingListItem, 0, len(items)),
	}

	for pos, item := range items {
		dbItem, err := q.InsertShoppingListItem(ctx, shoppingdb.InsertShoppingListItemParams{
			ShoppingListID: dbList.ID,
			Position:       int64(pos),
			IngredientName: item.IngredientName,
			Quantity:       item.Quantity,
			Unit:           item.Unit,
			Category:       item.Category,
			IsPurchased:    false,
			Notes:          item.Notes,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to insert shopping list item: %w", err)
		}
		list.Items = append(list.Items, fromDBItem(dbItem))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit shopping list: %w", err)
	}
	return list, nil
}

// GetByMealPlanID retrieves the current shopping list for a plan, items in
// generation order. Returns ErrNotFound if no list has been generated yet.
func (r *Repository) GetByMealPlanID(ctx context.Context, mealPlanID int64) (*ShoppingList, error) {
	dbList, err := r.queries.GetShoppingListByMealPlanID(ctx, mealPlanID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}

	dbItems, err := r.queries.ListShoppingListItems(ctx, dbList.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping list items: %w", err)
	}

	list := &ShoppingList{
		ID:         dbList.ID,
		MealPlanID: dbList.MealPlanID,
		Name:       dbList.Name,
		CreatedAt:  dbList.CreatedAt,
		UpdatedAt:  dbList.UpdatedAt,
		Items:      make([]ShoppingListItem, 0, len(dbItems)),
	}
	for _, dbItem := range dbItems {
		list.Items = append(list.Items, fromDBItem(dbItem))
	}
	return list, nil
}

// SetPurchased sets an item's purchased flag, scoped to the owning user.
// Last write wins; the operation is a plain flag assignment.
func (r *Repository) SetPurchased(ctx context.Context, itemID int64, userID string, purchased bool) (*ShoppingListItem, error) {
	dbItem, err := r.queries.SetItemPurchasedForUser(ctx, shoppingdb.SetItemPurchasedForUserParams{
		IsPurchased: purchased,
		ID:          itemID,
		UserID:      userID,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update shopping item: %w", err)
	}
	item := fromDBItem(dbItem)
	return &item, nil
}

// Toggle flips an item's purchased flag and returns the new state. Toggling
// twice returns the flag to its original value.
func (r *Repository) Toggle(ctx context.Context, itemID int64, userID string) (*ShoppingListItem, error) {
	current, err := r.queries.GetShoppingItemForUser(ctx, shoppingdb.GetShoppingItemForUserParams{
		ID:     itemID,
		UserID: userID,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shopping item: %w", err)
	}
	return r.SetPurchased(ctx, itemID, userID, !current.IsPurchased)
}

func fromDBItem(row shoppingdb.ShoppingListItem) ShoppingListItem {
	return ShoppingListItem{
		ID:             row.ID,
		ShoppingListID: row.ShoppingListID,
		IngredientName: row.IngredientName,
		Quantity:       row.Quantity,
		Unit:           row.Unit,
		Category:       row.Category,
		IsPurchased:    row.IsPurchased,
		Notes:          row.Notes,
	}
}
