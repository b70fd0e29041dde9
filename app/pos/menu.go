package pos

import (
	"context"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/config"
	"github.com/shashiranjanraj/barman/pkg/cache"
	"github.com/shashiranjanraj/barman/pkg/collection"
	"github.com/shashiranjanraj/barman/pkg/http"
	"github.com/shashiranjanraj/barman/pkg/logger"
	"github.com/shashiranjanraj/barman/pkg/validate"
)

// MenuQuery filters a menu listing. Zero values mean "everything".
type MenuQuery struct {
	Category   string
	SearchTerm string
}

// CreateMenuItemInput is the payload for a new catalogue entry.
type CreateMenuItemInput struct {
	Name        string  `json:"name"        validate:"required,min=2,max=100"`
	Description string  `json:"description,omitempty" validate:"nullable,max=500"`
	Category    string  `json:"category"    validate:"required,min=2,max=50"`
	Price       float64 `json:"price"       validate:"numeric,gte=0"`
	Image       string  `json:"image,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
	Department  string  `json:"department"  validate:"required,in=KITCHEN,BAR"`
}

// UpdateMenuItemInput is a partial update; empty fields are left untouched
// by the service.
type UpdateMenuItemInput struct {
	Name        string   `json:"name,omitempty"        validate:"nullable,min=2,max=100"`
	Description string   `json:"description,omitempty" validate:"nullable,max=500"`
	Category    string   `json:"category,omitempty"    validate:"nullable,min=2,max=50"`
	Price       *float64 `json:"price,omitempty"`
	Image       string   `json:"image,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
	Department  string   `json:"department,omitempty"  validate:"nullable,in=KITCHEN,BAR"`
}

// MenuItems lists the catalogue, optionally filtered by category and search
// term. A 404 reads as an empty menu, and rows without an ID (partial
// writes upstream) are dropped. Unsearched listings are cached briefly.
func (c *Client) MenuItems(ctx context.Context, q MenuQuery) ([]models.MenuItem, error) {
	cacheKey := ""
	if q.SearchTerm == "" {
		cacheKey = "menu:items:" + q.Category
		var cached []models.MenuItem
		if cache.Get(cacheKey, &cached) {
			return cached, nil
		}
	}

	var items []models.MenuItem
	err := c.do(ctx, "menu_items",
		http.Get(c.base+"/menu/items").
			Query("category", q.Category).
			Query("searchTerm", q.SearchTerm), &items)
	if IsNotFound(err) {
		return []models.MenuItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	items = collection.Filter(items, func(i models.MenuItem) bool { return i.ID != "" })

	if cacheKey != "" {
		_ = cache.Set(cacheKey, items, config.MenuCacheTTL())
	}
	return items, nil
}

// MenuItem fetches one catalogue entry.
func (c *Client) MenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, "menu_item", http.Get(c.base+"/menu/items/"+id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Categories lists menu categories, cached for MENU_CACHE_TTL.
func (c *Client) Categories(ctx context.Context) ([]models.MenuCategory, error) {
	const key = "menu:categories"

	var cached []models.MenuCategory
	if cache.Get(key, &cached) {
		return cached, nil
	}

	var cats []models.MenuCategory
	if err := c.do(ctx, "menu_categories", http.Get(c.base+"/menu/categories"), &cats); err != nil {
		return nil, err
	}

	_ = cache.Set(key, cats, config.MenuCacheTTL())
	return cats, nil
}

// CreateMenuItem adds a catalogue entry. Input is validated locally first;
// nothing malformed reaches the wire.
func (c *Client) CreateMenuItem(ctx context.Context, in CreateMenuItemInput) (*models.MenuItem, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, validationError("create_menu_item", errs)
	}

	var item models.MenuItem
	if err := c.do(ctx, "create_menu_item",
		http.Post(c.base+"/menu/items").Body(in), &item); err != nil {
		return nil, err
	}
	c.invalidateMenu()
	return &item, nil
}

// UpdateMenuItem applies a partial update to a catalogue entry.
func (c *Client) UpdateMenuItem(ctx context.Context, id string, in UpdateMenuItemInput) (*models.MenuItem, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, validationError("update_menu_item", errs)
	}

	var item models.MenuItem
	if err := c.do(ctx, "update_menu_item",
		http.Put(c.base+"/menu/items/"+id).Body(in), &item); err != nil {
		return nil, err
	}
	c.invalidateMenu()
	return &item, nil
}

// DeleteMenuItem removes a catalogue entry. Deleting an entry that is
// already gone counts as done: the 404 is absorbed and the caller drops
// its local row.
func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	err := c.do(ctx, "delete_menu_item", http.Delete(c.base+"/menu/items/"+id), nil)
	if IsNotFound(err) {
		logger.Info("pos: menu item already deleted", "id", id)
		err = nil
	}
	if err != nil {
		return err
	}
	c.invalidateMenu()
	return nil
}

// UpdateMenuItemStock flips an entry's in-stock flag.
func (c *Client) UpdateMenuItemStock(ctx context.Context, id string, inStock bool) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, "update_menu_item_stock",
		http.Patch(c.base+"/menu/items/"+id+"/stock").
			Body(map[string]bool{"inStock": inStock}), &item); err != nil {
		return nil, err
	}
	c.invalidateMenu()
	return &item, nil
}

// invalidateMenu drops cached listings after any catalogue write. Category
// keys are unknown here, so the known fixed keys plus the uncategorised
// listing are cleared; category listings simply age out within the TTL.
func (c *Client) invalidateMenu() {
	_ = cache.Del("menu:categories", "menu:items:")
}
