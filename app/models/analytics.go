package models

// TopSellingItem is one row of the daily top-sellers list.
type TopSellingItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// HourlySales is one hour's slice of the daily breakdown.
type HourlySales struct {
	Hour       int     `json:"hour"`
	Sales      float64 `json:"sales"`
	OrderCount int     `json:"orderCount"`
}

// DailySales is the analytics payload for one calendar day.
type DailySales struct {
	Date              string           `json:"date"`
	TotalSales        float64          `json:"totalSales"`
	OrderCount        int              `json:"orderCount"`
	AverageOrderValue float64          `json:"averageOrderValue"`
	TopSellingItems   []TopSellingItem `json:"topSellingItems"`
	SalesByHour       []HourlySales    `json:"salesByHour"`
}
