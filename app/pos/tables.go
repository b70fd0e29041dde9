package pos

import (
	"context"
	"strconv"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/pkg/http"
	"github.com/shashiranjanraj/barman/pkg/validate"
)

// CreateTableInput is the payload for registering a table.
type CreateTableInput struct {
	Number   int `json:"number"   validate:"required,integer,gt=0"`
	Capacity int `json:"capacity" validate:"required,integer,gt=0"`
}

// Tables lists every table with its occupancy and current-order summary.
func (c *Client) Tables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := c.do(ctx, "tables", http.Get(c.base+"/tables"), &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// Table fetches one table by its ID.
func (c *Client) Table(ctx context.Context, id int) (*models.Table, error) {
	var table models.Table
	if err := c.do(ctx, "table", http.Get(c.base+"/tables/"+strconv.Itoa(id)), &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// TableByNumber fetches one table by its printed number.
func (c *Client) TableByNumber(ctx context.Context, number int) (*models.Table, error) {
	var table models.Table
	if err := c.do(ctx, "table_by_number",
		http.Get(c.base+"/tables/number/"+strconv.Itoa(number)), &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// CreateTable registers a new table.
func (c *Client) CreateTable(ctx context.Context, in CreateTableInput) (*models.Table, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, validationError("create_table", errs)
	}

	var table models.Table
	if err := c.do(ctx, "create_table", http.Post(c.base+"/tables").Body(in), &table); err != nil {
		return nil, err
	}
	return &table, nil
}
