package models

// MovementType says which direction stock moved.
type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// StockMovement records one stock change. Product, account and store name
// fields are denormalized snapshots taken when the movement was written.
// AkunID/AkunName are nil for movements with no counterparty.
type StockMovement struct {
	ID            int64        `json:"id"`
	ProductID     int64        `json:"productId"`
	ProductName   string       `json:"productName"`
	ProductSKU    string       `json:"productSku"`
	ProductSatuan string       `json:"productSatuan"`
	MovementType  MovementType `json:"movementType"`
	Quantity      int          `json:"quantity"`
	Note          string       `json:"note"`
	AkunID        *int64       `json:"akunId"`
	AkunName      *string      `json:"akunName"`
	StoreID       int64        `json:"storeId"`
	StoreName     string       `json:"storeName"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
}
