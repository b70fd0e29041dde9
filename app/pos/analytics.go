package pos

import (
	"context"
	"time"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/pkg/http"
)

// DailySales fetches one day's sales rollup. date is YYYY-MM-DD; empty
// means today in the service's timezone.
func (c *Client) DailySales(ctx context.Context, date string) (*models.DailySales, error) {
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, validationError("daily_sales",
				map[string]string{"date": "The date must be in YYYY-MM-DD form."})
		}
	}

	var sales models.DailySales
	if err := c.do(ctx, "daily_sales",
		http.Get(c.base+"/analytics/daily-sales").Query("date", date), &sales); err != nil {
		return nil, err
	}
	return &sales, nil
}
