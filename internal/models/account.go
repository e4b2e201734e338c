package models

// AccountType distinguishes the two kinds of business contacts.
type AccountType string

const (
	AccountTypeCustomer AccountType = "customer"
	AccountTypeSupplier AccountType = "supplier"
)

// Account is a customer or supplier contact. Timestamps are the backend's
// string representation; DeletedAt is nil while the account is active.
type Account struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Email     string      `json:"email"`
	Address   string      `json:"address"`
	Type      AccountType `json:"type"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
	DeletedAt *string     `json:"deletedAt"`
}
