package pos_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/app/pos"
	"github.com/shashiranjanraj/barman/pkg/testkit"
)

func fakeTables() []models.Table {
	return []models.Table{
		{ID: 1, Number: 1, Capacity: 4, Status: models.TableAvailable},
		{ID: 2, Number: 5, Capacity: 2, Status: models.TableOccupied, IsOccupied: true,
			CurrentOrder: &models.TableOrder{ID: "ord-1", Amount: 345}},
	}
}

func TestTables(t *testing.T) {
	step := testkit.Respond("GET", "/tables", 200, fakeTables())
	testkit.NewTransport(step).Install(t)

	tables, err := newClient().Tables(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.True(t, tables[1].IsOccupied)
	assert.Equal(t, 345.0, tables[1].CurrentOrder.Amount)
}

func TestTableByNumber(t *testing.T) {
	step := testkit.Respond("GET", "/tables/number/5", 200, fakeTables()[1])
	testkit.NewTransport(step).Install(t)

	table, err := newClient().TableByNumber(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, table.Number)
	testkit.AssertCalled(t, step, 1)
}

func TestCreateTable(t *testing.T) {
	step := testkit.Respond("POST", "/tables", 201,
		models.Table{ID: 3, Number: 7, Capacity: 6, Status: models.TableAvailable})
	testkit.NewTransport(step).Install(t)

	table, err := newClient().CreateTable(context.Background(), pos.CreateTableInput{
		Number:   7,
		Capacity: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, table.Number)

	var sent map[string]int
	testkit.LastBody(t, step, &sent)
	assert.Equal(t, 7, sent["number"])
	assert.Equal(t, 6, sent["capacity"])
}

func TestCreateTableRejectsNonPositiveNumbers(t *testing.T) {
	mt := testkit.NewTransport()
	mt.Install(t)

	_, err := newClient().CreateTable(context.Background(), pos.CreateTableInput{
		Number:   0,
		Capacity: -2,
	})
	require.Error(t, err)
	assert.True(t, pos.IsValidation(err))
	assert.Equal(t, 0, mt.Total())
}

func TestDailySales(t *testing.T) {
	step := testkit.Respond("GET", "/analytics/daily-sales", 200, models.DailySales{
		Date:              "2026-08-30",
		TotalSales:        12345,
		OrderCount:        42,
		AverageOrderValue: 293.93,
		TopSellingItems:   []models.TopSellingItem{{Name: "Draft Beer", Quantity: 60, Revenue: 9000}},
		SalesByHour:       []models.HourlySales{{Hour: 21, Sales: 4200, OrderCount: 15}},
	})
	testkit.NewTransport(step).Install(t)

	sales, err := newClient().DailySales(context.Background(), "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, 42, sales.OrderCount)
	assert.Equal(t, "2026-08-30", step.Last().Query.Get("date"))
}

func TestDailySalesRejectsBadDate(t *testing.T) {
	mt := testkit.NewTransport()
	mt.Install(t)

	_, err := newClient().DailySales(context.Background(), "30-08-2026")
	require.Error(t, err)
	assert.True(t, pos.IsValidation(err))
	assert.Equal(t, 0, mt.Total())
}
