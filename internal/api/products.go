package api

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/emkr-13/sim-admin/internal/models"
)

// ProductsService manages inventory items, including the PDF and Excel
// export side channels.
type ProductsService struct {
	c *Client
}

// ProductQuery filters the product list. CategoryID zero means no filter.
type ProductQuery struct {
	ListQuery
	CategoryID int64
}

// ProductPayload is the create/update body for a product.
type ProductPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  int64   `json:"categoryId"`
	Price       float64 `json:"price"`
	Satuan      string  `json:"satuan"`
}

func (p ProductPayload) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if p.CategoryID <= 0 {
		return &ValidationError{Field: "categoryId", Reason: "is required"}
	}
	if p.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

// GetAll fetches one page of products.
func (s *ProductsService) GetAll(ctx context.Context, q ProductQuery) ([]models.Product, *models.PaginationData, error) {
	v := q.values()
	if q.CategoryID > 0 {
		v.Set("categoryId", strconv.FormatInt(q.CategoryID, 10))
	}
	return getList[models.Product](ctx, s.c, "products", "products/all", v)
}

// Detail fetches a single product by id.
func (s *ProductsService) Detail(ctx context.Context, id int64) (*models.Product, error) {
	return postEntity[models.Product](ctx, s.c, "products", "detail", "products/detail", idBody{ID: id})
}

// Create creates a product.
func (s *ProductsService) Create(ctx context.Context, p ProductPayload) (*models.Product, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return postEntity[models.Product](ctx, s.c, "products", "create", "products/create", p)
}

// Update edits a product.
func (s *ProductsService) Update(ctx context.Context, id int64, p ProductPayload) (*models.Product, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	body := struct {
		ID int64 `json:"id"`
		ProductPayload
	}{ID: id, ProductPayload: p}
	return postEntity[models.Product](ctx, s.c, "products", "update", "products/update", body)
}

// Delete soft-deletes a product.
func (s *ProductsService) Delete(ctx context.Context, id int64) error {
	_, err := postEntity[models.Product](ctx, s.c, "products", "delete", "products/delete", idBody{ID: id})
	return err
}

// ExportPDF downloads the product list as a PDF named products-{title}.pdf
// under dir and returns the written path.
func (s *ProductsService) ExportPDF(ctx context.Context, title, dir string) (string, error) {
	v := url.Values{}
	v.Set("title", title)
	dest := filepath.Join(dir, fmt.Sprintf("products-%s.pdf", title))
	return s.c.download(ctx, "products", "exportPdf", "products/export/pdf", v, "application/pdf", dest)
}

// ExportExcel downloads the product list as a workbook named
// products-{title}.xlsx under dir and returns the written path.
func (s *ProductsService) ExportExcel(ctx context.Context, title, dir string) (string, error) {
	v := url.Values{}
	v.Set("title", title)
	dest := filepath.Join(dir, fmt.Sprintf("products-%s.xlsx", title))
	return s.c.download(ctx, "products", "exportExcel", "products/export/excel", v,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", dest)
}
