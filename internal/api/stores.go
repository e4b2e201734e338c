package api

import (
	"context"
	"strings"

	"github.com/emkr-13/sim-admin/internal/models"
)

// StoresService manages store locations.
type StoresService struct {
	c *Client
}

// StoreQuery filters the store list.
type StoreQuery struct {
	ListQuery
}

// StorePayload is the create/update body for a store. Phone and Email are
// optional on the backend.
type StorePayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Manager     string  `json:"manager"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     string  `json:"address"`
}

func (p StorePayload) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(p.Location) == "" {
		return &ValidationError{Field: "location", Reason: "is required"}
	}
	return nil
}

// GetAll fetches one page of stores.
func (s *StoresService) GetAll(ctx context.Context, q StoreQuery) ([]models.Store, *models.PaginationData, error) {
	return getList[models.Store](ctx, s.c, "stores", "store/all", q.values())
}

// Detail fetches a single store by id.
func (s *StoresService) Detail(ctx context.Context, id int64) (*models.Store, error) {
	return postEntity[models.Store](ctx, s.c, "stores", "detail", "store/detail", idBody{ID: id})
}

// Create creates a store.
func (s *StoresService) Create(ctx context.Context, p StorePayload) (*models.Store, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return postEntity[models.Store](ctx, s.c, "stores", "create", "store/create", p)
}

// Update edits a store.
func (s *StoresService) Update(ctx context.Context, id int64, p StorePayload) (*models.Store, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	body := struct {
		ID int64 `json:"id"`
		StorePayload
	}{ID: id, StorePayload: p}
	return postEntity[models.Store](ctx, s.c, "stores", "update", "store/update", body)
}

// Delete soft-deletes a store.
func (s *StoresService) Delete(ctx context.Context, id int64) error {
	_, err := postEntity[models.Store](ctx, s.c, "stores", "delete", "store/delete", idBody{ID: id})
	return err
}
