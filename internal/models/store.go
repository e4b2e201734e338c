package models

// Store is a physical location holding stock.
type Store struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Manager     string  `json:"manager"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     string  `json:"address"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	DeletedAt   *string `json:"deletedAt"`
}
