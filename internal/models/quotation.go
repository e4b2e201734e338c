package models

// Quotation is a price quote issued to a customer. List responses carry
// the summary fields only; the detail endpoint also fills Details.
// Monetary amounts travel as strings.
type Quotation struct {
	ID              int64           `json:"id"`
	QuotationNumber string          `json:"quotationNumber"`
	QuotationDate   string          `json:"quotationDate"`
	CustomerID      *int64          `json:"customerId"`
	CustomerName    *string         `json:"customerName"`
	StoreID         *int64          `json:"storeId"`
	StoreName       *string         `json:"storeName"`
	Subtotal        string          `json:"subtotal"`
	DiscountAmount  string          `json:"discountAmount"`
	GrandTotal      string          `json:"grandTotal"`
	Status          string          `json:"status"`
	Notes           *string         `json:"notes"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
	Details         []QuotationLine `json:"details,omitempty"`
}

// QuotationLine is one quoted product row.
type QuotationLine struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   string  `json:"unitPrice"`
	Satuan      string  `json:"satuan"`
	Discount    string  `json:"discount"`
	Subtotal    string  `json:"subtotal"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
}
