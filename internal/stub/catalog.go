package stub

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/emkr-13/sim-admin/internal/models"
)

func (s *Server) listCategories(c echo.Context) error {
	q := parseListParams(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]*models.Category, 0, len(s.categories))
	for _, cat := range s.categories {
		if cat.DeletedAt != nil {
			continue
		}
		if q.search != "" && !containsFold(cat.Name, q.search) {
			continue
		}
		rows = append(rows, cat)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if q.sortBy == "createdAt" {
			return rows[i].CreatedAt < rows[j].CreatedAt
		}
		return rows[i].Name < rows[j].Name
	})
	if q.sortOrder == "desc" {
		reverse(rows)
	}

	start, end, pg := paginate(len(rows), q.page, q.limit)
	page := make([]models.Category, 0, end-start)
	for _, cat := range rows[start:end] {
		page = append(page, *cat)
	}
	return okList(c, "categories fetched", page, pg)
}

type categoryPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) createCategory(c echo.Context) error {
	var req categoryPayload
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := nowStamp()
	cat := &models.Category{
		ID:          s.allocID(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.categories = append(s.categories, cat)
	return ok(c, "category created", *cat)
}

func (s *Server) updateCategory(c echo.Context) error {
	var req categoryPayload
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cat := s.findCategory(req.ID)
	if cat == nil {
		return fail(c, http.StatusNotFound, "category not found")
	}
	if req.Name != "" {
		cat.Name = req.Name
	}
	cat.Description = req.Description
	cat.UpdatedAt = nowStamp()
	// denormalized names stay as written; products are not rewritten
	return ok(c, "category updated", *cat)
}

func (s *Server) deleteCategory(c echo.Context) error {
	var req idRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cat := s.findCategory(req.ID)
	if cat == nil {
		return fail(c, http.StatusNotFound, "category not found")
	}
	now := nowStamp()
	cat.DeletedAt = &now
	return ok(c, "category deleted", nil)
}

func (s *Server) categoryDetail(c echo.Context) error {
	var req idRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cat := s.findCategory(req.ID)
	if cat == nil {
		return fail(c, http.StatusNotFound, "category not found")
	}
	return ok(c, "category detail", *cat)
}

func (s *Server) findCategory(id int64) *models.Category {
	for _, cat := range s.categories {
		if cat.ID == id && cat.DeletedAt == nil {
			return cat
		}
	}
	return nil
}

func (s *Server) listProducts(c echo.Context) error {
	q := parseListParams(c)
	categoryID, _ := strconv.ParseInt(c.QueryParam("categoryId"), 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]*models.Product, 0, len(s.products))
	for _, p := range s.products {
		if categoryID > 0 && p.CategoryID != categoryID {
			continue
		}
		if q.search != "" && !containsFold(p.Name, q.search) && !containsFold(p.SKU, q.search) {
			continue
		}
		rows = append(rows, p)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		switch q.sortBy {
		case "sku":
			return rows[i].SKU < rows[j].SKU
		case "stock":
			return rows[i].Stock < rows[j].Stock
		case "createdAt":
			return rows[i].CreatedAt < rows[j].CreatedAt
		default:
			return rows[i].Name < rows[j].Name
		}
	})
	if q.sortOrder == "desc" {
		reverse(rows)
	}

	start, end, pg := paginate(len(rows), q.page, q.limit)
	page := make([]models.Product, 0, end-start)
	for _, p := range rows[start:end] {
		page = append(page, *p)
	}
	return okList(c, "products fetched", page, pg)
}

type productPayload struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  int64   `json:"categoryId"`
	Price       float64 `json:"price"`
	Satuan      string  `json:"satuan"`
}

func (s *Server) createProduct(c echo.Context) error {
	var req productPayload
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cat := s.findCategory(req.CategoryID)
	if cat == nil {
		return fail(c, http.StatusBadRequest, "unknown category")
	}

	now := nowStamp()
	id := s.allocID()
	p := &models.Product{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		SKU:          fmt.Sprintf("SKU-%05d", id),
		Satuan:       req.Satuan,
		CategoryID:   cat.ID,
		CategoryName: cat.Name,
		PriceSell:    fmt.Sprintf("%.2f", req.Price),
		PriceCost:    "0.00",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.products = append(s.products, p)
	return ok(c, "product created", *p)
}

func (s *Server) updateProduct(c echo.Context) error {
	var req productPayload
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProduct(req.ID)
	if p == nil {
		return fail(c, http.StatusNotFound, "product not found")
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if req.CategoryID > 0 {
		if cat := s.findCategory(req.CategoryID); cat != nil {
			p.CategoryID = cat.ID
			p.CategoryName = cat.Name
		}
	}
	if req.Price > 0 {
		p.PriceSell = fmt.Sprintf("%.2f", req.Price)
	}
	if req.Satuan != "" {
		p.Satuan = req.Satuan
	}
	p.UpdatedAt = nowStamp()
	return ok(c, "product updated", *p)
}

func (s *Server) deleteProduct(c echo.Context) error {
	var req idRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == req.ID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return ok(c, "product deleted", nil)
		}
	}
	return fail(c, http.StatusNotFound, "product not found")
}

func (s *Server) productDetail(c echo.Context) error {
	var req idRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProduct(req.ID)
	if p == nil {
		return fail(c, http.StatusNotFound, "product not found")
	}
	return ok(c, "product detail", *p)
}

func (s *Server) findProduct(id int64) *models.Product {
	for _, p := range s.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// exportProductsPDF emits a minimal PDF-shaped byte stream: enough for the
// client's download path, not a typeset document.
func (s *Server) exportProductsPDF(c echo.Context) error {
	title := c.QueryParam("title")

	s.mu.Lock()
	defer s.mu.Unlock()
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	fmt.Fprintf(&buf, "%% %s\n", title)
	for _, p := range s.products {
		fmt.Fprintf(&buf, "%% %s\t%s\t%d %s\t%s\n", p.SKU, p.Name, p.Stock, p.Satuan, p.PriceSell)
	}
	buf.WriteString("%%EOF\n")
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

// exportProductsExcel emits tab-separated rows under the xlsx content
// type; a real workbook is out of scope for a stub.
func (s *Server) exportProductsExcel(c echo.Context) error {
	title := c.QueryParam("title")

	s.mu.Lock()
	defer s.mu.Unlock()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\nsku\tname\tstock\tsatuan\tprice\n", title)
	for _, p := range s.products {
		fmt.Fprintf(&buf, "%s\t%s\t%d\t%s\t%s\n", p.SKU, p.Name, p.Stock, p.Satuan, p.PriceSell)
	}
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
