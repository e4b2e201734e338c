package api

import (
	"context"
	"regexp"
	"strings"

	"github.com/emkr-13/sim-admin/internal/models"
)

// AccountsService manages customer and supplier contacts. The backend
// exposes these under the akun/* endpoints.
type AccountsService struct {
	c *Client
}

// AccountQuery filters the account list. Type accepts "customer",
// "supplier" or the "all" sentinel (equivalent to no filter).
type AccountQuery struct {
	ListQuery
	Type string
}

// AccountPayload is the create/update body for an account.
type AccountPayload struct {
	Name    string             `json:"name"`
	Phone   string             `json:"phone"`
	Email   string             `json:"email"`
	Address string             `json:"address"`
	Type    models.AccountType `json:"type"`
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigits    = regexp.MustCompile(`[^0-9]`)
)

// validate mirrors the backend's field rules so an obviously bad payload
// never leaves the process. The returned error names the offending field.
func (p AccountPayload) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(p.Phone) == "" {
		return &ValidationError{Field: "phone", Reason: "is required"}
	}
	if strings.TrimSpace(p.Email) == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	if strings.TrimSpace(p.Address) == "" {
		return &ValidationError{Field: "address", Reason: "is required"}
	}
	if p.Type != models.AccountTypeCustomer && p.Type != models.AccountTypeSupplier {
		return &ValidationError{Field: "type", Reason: "must be either customer or supplier"}
	}
	if !emailPattern.MatchString(p.Email) {
		return &ValidationError{Field: "email", Reason: "invalid format"}
	}
	if digits := nonDigits.ReplaceAllString(p.Phone, ""); len(digits) < 10 || len(digits) > 15 {
		return &ValidationError{Field: "phone", Reason: "must be between 10-15 digits"}
	}
	return nil
}

// GetAll fetches one page of accounts.
func (s *AccountsService) GetAll(ctx context.Context, q AccountQuery) ([]models.Account, *models.PaginationData, error) {
	v := q.values()
	setFilter(v, "type", q.Type)
	return getList[models.Account](ctx, s.c, "accounts", "akun/all", v)
}

// Detail fetches a single account by id.
func (s *AccountsService) Detail(ctx context.Context, id int64) (*models.Account, error) {
	return postEntity[models.Account](ctx, s.c, "accounts", "detail", "akun/detail", idBody{ID: id})
}

// Create validates the payload client-side, then creates the account.
func (s *AccountsService) Create(ctx context.Context, p AccountPayload) (*models.Account, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return postEntity[models.Account](ctx, s.c, "accounts", "create", "akun/create", p)
}

// Update validates the payload client-side, then edits the account.
func (s *AccountsService) Update(ctx context.Context, id int64, p AccountPayload) (*models.Account, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	body := struct {
		ID int64 `json:"id"`
		AccountPayload
	}{ID: id, AccountPayload: p}
	return postEntity[models.Account](ctx, s.c, "accounts", "update", "akun/edit", body)
}

// Delete soft-deletes the account.
func (s *AccountsService) Delete(ctx context.Context, id int64) error {
	_, err := postEntity[models.Account](ctx, s.c, "accounts", "delete", "akun/delete", idBody{ID: id})
	return err
}
