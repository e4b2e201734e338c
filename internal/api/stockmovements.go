package api

import (
	"context"

	"github.com/emkr-13/sim-admin/internal/models"
)

// StockMovementsService reads the stock movement ledger. Movements are
// written by the backend as a side effect of other operations, so the
// client surface is read-only.
type StockMovementsService struct {
	c *Client
}

// StockMovementQuery filters the movement list. MovementType accepts
// "in", "out" or the "all" sentinel.
type StockMovementQuery struct {
	ListQuery
	MovementType string
}

// GetAll fetches one page of stock movements.
func (s *StockMovementsService) GetAll(ctx context.Context, q StockMovementQuery) ([]models.StockMovement, *models.PaginationData, error) {
	v := q.values()
	setFilter(v, "movementType", q.MovementType)
	return getList[models.StockMovement](ctx, s.c, "stock-movements", "stock-movements/all", v)
}

// Detail fetches a single movement by id.
func (s *StockMovementsService) Detail(ctx context.Context, id int64) (*models.StockMovement, error) {
	return postEntity[models.StockMovement](ctx, s.c, "stock-movements", "detail", "stock-movements/detail", idBody{ID: id})
}
