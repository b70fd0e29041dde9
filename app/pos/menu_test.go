package pos_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/app/pos"
	"github.com/shashiranjanraj/barman/pkg/cache"
	"github.com/shashiranjanraj/barman/pkg/testkit"
)

// freshCache isolates each test from listings cached by its neighbours.
func freshCache(t *testing.T) {
	t.Helper()
	cache.SetDefault(cache.NewMemory())
	t.Cleanup(func() { cache.SetDefault(cache.NewMemory()) })
}

func fakeMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: "beer-1", Name: "Draft Beer", Category: "BEVERAGES", Price: 150, IsAvailable: true, Department: models.DepartmentBar},
		{ID: "fries-1", Name: "Fries", Category: "SNACKS", Price: 99, IsAvailable: true, Department: models.DepartmentKitchen},
	}
}

func TestMenuItemsSearchSendsQueryParams(t *testing.T) {
	freshCache(t)
	step := testkit.Respond("GET", "/menu/items", 200, fakeMenu()[:1])
	testkit.NewTransport(step).Install(t)

	items, err := newClient().MenuItems(context.Background(), pos.MenuQuery{
		Category:   "BEVERAGES",
		SearchTerm: "draft beer",
	})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	q := step.Last().Query
	assert.Equal(t, "BEVERAGES", q.Get("category"))
	assert.Equal(t, "draft beer", q.Get("searchTerm"))
}

func TestMenuItemsEmptyFiltersStayOffTheURL(t *testing.T) {
	freshCache(t)
	step := testkit.Respond("GET", "/menu/items", 200, fakeMenu())
	testkit.NewTransport(step).Install(t)

	_, err := newClient().MenuItems(context.Background(), pos.MenuQuery{})
	require.NoError(t, err)

	q := step.Last().Query
	assert.False(t, q.Has("category"))
	assert.False(t, q.Has("searchTerm"))
}

func TestMenuItemsNotFoundReadsAsEmptyMenu(t *testing.T) {
	freshCache(t)
	step := testkit.Respond("GET", "/menu/items", 404, nil)
	testkit.NewTransport(step).Install(t)

	items, err := newClient().MenuItems(context.Background(), pos.MenuQuery{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestMenuItemsDropRowsWithoutID(t *testing.T) {
	freshCache(t)
	menu := append(fakeMenu(), models.MenuItem{Name: "half-written row"})
	step := testkit.Respond("GET", "/menu/items", 200, menu)
	testkit.NewTransport(step).Install(t)

	items, err := newClient().MenuItems(context.Background(), pos.MenuQuery{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestMenuItemsListingIsCached(t *testing.T) {
	freshCache(t)
	step := testkit.Respond("GET", "/menu/items", 200, fakeMenu())
	testkit.NewTransport(step).Install(t)

	client := newClient()
	_, err := client.MenuItems(context.Background(), pos.MenuQuery{})
	require.NoError(t, err)
	again, err := client.MenuItems(context.Background(), pos.MenuQuery{})
	require.NoError(t, err)

	assert.Len(t, again, 2)
	testkit.AssertCalled(t, step, 1)
}

func TestMenuItemsSearchBypassesCache(t *testing.T) {
	freshCache(t)
	step := testkit.Respond("GET", "/menu/items", 200, fakeMenu())
	testkit.NewTransport(step).Install(t)

	client := newClient()
	for i := 0; i < 2; i++ {
		_, err := client.MenuItems(context.Background(), pos.MenuQuery{SearchTerm: "beer"})
		require.NoError(t, err)
	}
	testkit.AssertCalled(t, step, 2)
}

func TestCategoriesCached(t *testing.T) {
	freshCache(t)
	step := testkit.Respond("GET", "/menu/categories", 200,
		[]models.MenuCategory{{ID: "c1", Name: "BEVERAGES"}})
	testkit.NewTransport(step).Install(t)

	client := newClient()
	for i := 0; i < 3; i++ {
		cats, err := client.Categories(context.Background())
		require.NoError(t, err)
		assert.Len(t, cats, 1)
	}
	testkit.AssertCalled(t, step, 1)
}

func TestCreateMenuItemValidationStaysOffTheWire(t *testing.T) {
	freshCache(t)
	step := testkit.Respond("POST", "/menu/items", 201, nil)
	mt := testkit.NewTransport(step)
	mt.Install(t)

	_, err := newClient().CreateMenuItem(context.Background(), pos.CreateMenuItemInput{
		Name:       "X", // too short
		Category:   "BEVERAGES",
		Department: "CELLAR", // not a department
	})
	require.Error(t, err)
	assert.True(t, pos.IsValidation(err))
	assert.Equal(t, 0, mt.Total())
}

func TestDeleteMenuItemAbsorbsNotFound(t *testing.T) {
	freshCache(t)
	step := testkit.Respond("DELETE", "/menu/items/gone-1", 404,
		map[string]string{"message": "Menu item not found"})
	testkit.NewTransport(step).Install(t)

	err := newClient().DeleteMenuItem(context.Background(), "gone-1")
	assert.NoError(t, err, "deleting an already-deleted item counts as done")
	testkit.AssertCalled(t, step, 1)
}

func TestCatalogueWriteInvalidatesCachedListing(t *testing.T) {
	freshCache(t)
	list := testkit.Respond("GET", "/menu/items", 200, fakeMenu())
	create := testkit.Respond("POST", "/menu/items", 201, fakeMenu()[0])
	testkit.NewTransport(list, create).Install(t)

	client := newClient()
	_, err := client.MenuItems(context.Background(), pos.MenuQuery{})
	require.NoError(t, err)

	_, err = client.CreateMenuItem(context.Background(), pos.CreateMenuItemInput{
		Name:       "Masala Peanuts",
		Category:   "SNACKS",
		Price:      120,
		Department: models.DepartmentKitchen,
	})
	require.NoError(t, err)

	_, err = client.MenuItems(context.Background(), pos.MenuQuery{})
	require.NoError(t, err)
	testkit.AssertCalled(t, list, 2)
}

func TestUpdateMenuItemStock(t *testing.T) {
	freshCache(t)
	out := fakeMenu()[0]
	out.IsAvailable = false
	step := testkit.Respond("PATCH", "/menu/items/beer-1/stock", 200, out)
	testkit.NewTransport(step).Install(t)

	item, err := newClient().UpdateMenuItemStock(context.Background(), "beer-1", false)
	require.NoError(t, err)
	assert.False(t, item.IsAvailable)

	var sent map[string]bool
	testkit.LastBody(t, step, &sent)
	assert.False(t, sent["inStock"])
}
