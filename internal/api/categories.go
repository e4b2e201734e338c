package api

import (
	"context"
	"strings"

	"github.com/emkr-13/sim-admin/internal/models"
)

// CategoriesService manages product categories.
type CategoriesService struct {
	c *Client
}

// CategoryQuery filters the category list. Categories have no
// resource-specific filter.
type CategoryQuery struct {
	ListQuery
}

// CategoryPayload is the create/update body for a category.
type CategoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (p CategoryPayload) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	return nil
}

// GetAll fetches one page of categories.
func (s *CategoriesService) GetAll(ctx context.Context, q CategoryQuery) ([]models.Category, *models.PaginationData, error) {
	return getList[models.Category](ctx, s.c, "categories", "categories/all", q.values())
}

// Detail fetches a single category by id.
func (s *CategoriesService) Detail(ctx context.Context, id int64) (*models.Category, error) {
	return postEntity[models.Category](ctx, s.c, "categories", "detail", "categories/detail", idBody{ID: id})
}

// Create creates a category.
func (s *CategoriesService) Create(ctx context.Context, p CategoryPayload) (*models.Category, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return postEntity[models.Category](ctx, s.c, "categories", "create", "categories/create", p)
}

// Update edits a category.
func (s *CategoriesService) Update(ctx context.Context, id int64, p CategoryPayload) (*models.Category, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	body := struct {
		ID int64 `json:"id"`
		CategoryPayload
	}{ID: id, CategoryPayload: p}
	return postEntity[models.Category](ctx, s.c, "categories", "update", "categories/update", body)
}

// Delete soft-deletes a category.
func (s *CategoriesService) Delete(ctx context.Context, id int64) error {
	_, err := postEntity[models.Category](ctx, s.c, "categories", "delete", "categories/delete", idBody{ID: id})
	return err
}
