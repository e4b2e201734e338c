package stub

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/emkr-13/sim-admin/internal/models"
)

func (s *Server) listMovements(c echo.Context) error {
	q := parseListParams(c)
	movementType := c.QueryParam("movementType")

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]*models.StockMovement, 0, len(s.movements))
	for _, m := range s.movements {
		if movementType != "" && string(m.MovementType) != movementType {
			continue
		}
		if q.search != "" && !containsFold(m.ProductName, q.search) && !containsFold(m.Note, q.search) {
			continue
		}
		rows = append(rows, m)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		switch q.sortBy {
		case "quantity":
			return rows[i].Quantity < rows[j].Quantity
		case "productName":
			return rows[i].ProductName < rows[j].ProductName
		default:
			return rows[i].CreatedAt < rows[j].CreatedAt
		}
	})
	if q.sortOrder == "desc" {
		reverse(rows)
	}

	start, end, pg := paginate(len(rows), q.page, q.limit)
	page := make([]models.StockMovement, 0, end-start)
	for _, m := range rows[start:end] {
		page = append(page, *m)
	}
	return okList(c, "stock movements fetched", page, pg)
}

func (s *Server) movementDetail(c echo.Context) error {
	var req idRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movements {
		if m.ID == req.ID {
			return ok(c, "stock movement detail", *m)
		}
	}
	return fail(c, http.StatusNotFound, "stock movement not found")
}

func (s *Server) listQuotations(c echo.Context) error {
	q := parseListParams(c)
	status := c.QueryParam("status")

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]*models.Quotation, 0, len(s.quotations))
	for _, quo := range s.quotations {
		if status != "" && quo.Status != status {
			continue
		}
		if q.search != "" && !containsFold(quo.QuotationNumber, q.search) {
			continue
		}
		rows = append(rows, quo)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		switch q.sortBy {
		case "grandTotal":
			return rows[i].GrandTotal < rows[j].GrandTotal
		case "status":
			return rows[i].Status < rows[j].Status
		default:
			return rows[i].QuotationDate < rows[j].QuotationDate
		}
	})
	if q.sortOrder == "desc" {
		reverse(rows)
	}

	start, end, pg := paginate(len(rows), q.page, q.limit)
	page := make([]models.Quotation, 0, end-start)
	for _, quo := range rows[start:end] {
		summary := *quo
		summary.Details = nil // lines only on the detail endpoint
		page = append(page, summary)
	}
	return okList(c, "quotations fetched", page, pg)
}

func (s *Server) quotationDetail(c echo.Context) error {
	var req idRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, quo := range s.quotations {
		if quo.ID == req.ID {
			return ok(c, "quotation detail", *quo)
		}
	}
	return fail(c, http.StatusNotFound, "quotation not found")
}
