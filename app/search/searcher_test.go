package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/app/pos"
	"github.com/shashiranjanraj/barman/app/search"
	"github.com/shashiranjanraj/barman/config"
	"github.com/shashiranjanraj/barman/pkg/testkit"
)

func quickDebounce(t *testing.T) {
	t.Helper()
	config.Set("SEARCH_DEBOUNCE", "20ms")
	t.Cleanup(func() { config.Set("SEARCH_DEBOUNCE", "300ms") })
}

func TestSearcherOneLookupPerBurst(t *testing.T) {
	quickDebounce(t)
	step := testkit.Respond("GET", "/menu/items", 200, []models.MenuItem{
		{ID: "cola-1", Name: "Cola", Category: "BEVERAGES"},
	})
	testkit.NewTransport(step).Install(t)

	results := make(chan search.Result, 4)
	s := search.NewMenuSearcher(pos.NewWithBase("http://pos.test"),
		func(r search.Result) { results <- r })
	defer s.Close()

	// The operator types "cola" one rune at a time.
	ctx := context.Background()
	for _, term := range []string{"c", "co", "col", "cola"} {
		s.Query(ctx, term, "BEVERAGES")
		time.Sleep(3 * time.Millisecond)
	}

	select {
	case r := <-results:
		require.NoError(t, r.Err)
		assert.Equal(t, "cola", r.Term)
		assert.Equal(t, "BEVERAGES", r.Category)
		require.Len(t, r.Items, 1)
		assert.Equal(t, "Cola", r.Items[0].Name)
	case <-time.After(time.Second):
		t.Fatal("no result delivered")
	}

	// Only the final keystroke may reach the wire.
	testkit.AssertCalled(t, step, 1)
	q := step.Last().Query
	assert.Equal(t, "cola", q.Get("searchTerm"))

	select {
	case r := <-results:
		t.Fatalf("unexpected second result: %+v", r)
	case <-time.After(80 * time.Millisecond):
	}
}

func TestSearcherDeliversLookupError(t *testing.T) {
	quickDebounce(t)
	step := testkit.Respond("GET", "/menu/items", 500,
		map[string]string{"message": "menu service down"})
	testkit.NewTransport(step).Install(t)

	results := make(chan search.Result, 1)
	s := search.NewMenuSearcher(pos.NewWithBase("http://pos.test"),
		func(r search.Result) { results <- r })
	defer s.Close()

	s.Query(context.Background(), "beer", "")

	select {
	case r := <-results:
		require.Error(t, r.Err)
		assert.Contains(t, r.Err.Error(), "menu service down")
	case <-time.After(time.Second):
		t.Fatal("no result delivered")
	}
}

func TestSearcherCloseDropsPendingDelivery(t *testing.T) {
	quickDebounce(t)
	step := testkit.Respond("GET", "/menu/items", 200, []models.MenuItem{})
	testkit.NewTransport(step).Install(t)

	results := make(chan search.Result, 1)
	s := search.NewMenuSearcher(pos.NewWithBase("http://pos.test"),
		func(r search.Result) { results <- r })

	s.Query(context.Background(), "beer", "")
	s.Close()

	select {
	case r := <-results:
		t.Fatalf("closed searcher delivered %+v", r)
	case <-time.After(100 * time.Millisecond):
	}
	testkit.AssertNotCalled(t, step)
}
