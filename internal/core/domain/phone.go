package domain

// Phone is a catalog listing for a single used handset.
type Phone struct {
	ID            string  `json:"id"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	Condition     string  `json:"condition"`
	StockQuantity int     `json:"stock_quantity"`
}
