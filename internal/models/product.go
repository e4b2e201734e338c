package models

// Product is an inventory item. CategoryName is a point-in-time snapshot
// of the category's name, denormalized alongside CategoryID; it is not
// guaranteed to track later category renames. Prices travel as strings.
type Product struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	SKU          string `json:"sku"`
	Stock        int    `json:"stock"`
	Satuan       string `json:"satuan"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	PriceSell    string `json:"price_sell"`
	PriceCost    string `json:"price_cost"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}
