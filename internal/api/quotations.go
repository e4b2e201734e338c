package api

import (
	"context"

	"github.com/emkr-13/sim-admin/internal/models"
)

// QuotationsService reads quotations. The admin client only browses them;
// quotations are authored elsewhere.
type QuotationsService struct {
	c *Client
}

// QuotationQuery filters the quotation list. Status accepts a quote status
// or the "all" sentinel.
type QuotationQuery struct {
	ListQuery
	Status string
}

// GetAll fetches one page of quotations (summary rows, no lines).
func (s *QuotationsService) GetAll(ctx context.Context, q QuotationQuery) ([]models.Quotation, *models.PaginationData, error) {
	v := q.values()
	setFilter(v, "status", q.Status)
	return getList[models.Quotation](ctx, s.c, "quotations", "quotations/all", v)
}

// Detail fetches a single quotation with its lines.
func (s *QuotationsService) Detail(ctx context.Context, id int64) (*models.Quotation, error) {
	return postEntity[models.Quotation](ctx, s.c, "quotations", "detail", "quotations/detail", idBody{ID: id})
}
