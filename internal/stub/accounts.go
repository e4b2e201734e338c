package stub

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/emkr-13/sim-admin/internal/models"
)

type idRequest struct {
	ID int64 `json:"id"`
}

func (s *Server) listAccounts(c echo.Context) error {
	q := parseListParams(c)
	typ := c.QueryParam("type")

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]*models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if a.DeletedAt != nil {
			continue
		}
		if typ != "" && string(a.Type) != typ {
			continue
		}
		if q.search != "" && !containsFold(a.Name, q.search) && !containsFold(a.Email, q.search) {
			continue
		}
		rows = append(rows, a)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		switch q.sortBy {
		case "email":
			return rows[i].Email < rows[j].Email
		case "type":
			return rows[i].Type < rows[j].Type
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
	page := make([]models.Account, 0, end-start)
	for _, a := range rows[start:end] {
		page = append(page, *a)
	}
	return okList(c, "accounts fetched", page, pg)
}

type accountPayload struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

func (s *Server) createAccount(c echo.Context) error {
	var req accountPayload
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Phone == "" || req.Email == "" || req.Address == "" {
		return fail(c, http.StatusBadRequest, "missing required fields")
	}
	if req.Type != string(models.AccountTypeCustomer) && req.Type != string(models.AccountTypeSupplier) {
		return fail(c, http.StatusBadRequest, "invalid account type")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := nowStamp()
	a := &models.Account{
		ID:        s.allocID(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Type:      models.AccountType(req.Type),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.accounts = append(s.accounts, a)
	return ok(c, "account created", *a)
}

func (s *Server) updateAccount(c echo.Context) error {
	var req accountPayload
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findAccount(req.ID)
	if a == nil {
		return fail(c, http.StatusNotFound, "account not found")
	}
	if req.Name != "" {
		a.Name = req.Name
	}
	if req.Phone != "" {
		a.Phone = req.Phone
	}
	if req.Email != "" {
		a.Email = req.Email
	}
	if req.Address != "" {
		a.Address = req.Address
	}
	if req.Type != "" {
		a.Type = models.AccountType(req.Type)
	}
	a.UpdatedAt = nowStamp()
	return ok(c, "account updated", *a)
}

func (s *Server) deleteAccount(c echo.Context) error {
	var req idRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findAccount(req.ID)
	if a == nil {
		return fail(c, http.StatusNotFound, "account not found")
	}
	now := nowStamp()
	a.DeletedAt = &now
	return ok(c, "account deleted", nil)
}

func (s *Server) accountDetail(c echo.Context) error {
	var req idRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findAccount(req.ID)
	if a == nil {
		return fail(c, http.StatusNotFound, "account not found")
	}
	return ok(c, "account detail", *a)
}

// findAccount returns the active account with the given id. Callers hold
// the lock.
func (s *Server) findAccount(id int64) *models.Account {
	for _, a := range s.accounts {
		if a.ID == id && a.DeletedAt == nil {
			return a
		}
	}
	return nil
}
