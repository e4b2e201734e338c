package stub

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/emkr-13/sim-admin/internal/models"
)

func (s *Server) listStores(c echo.Context) error {
	q := parseListParams(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]*models.Store, 0, len(s.stores))
	for _, st := range s.stores {
		if st.DeletedAt != nil {
			continue
		}
		if q.search != "" && !containsFold(st.Name, q.search) && !containsFold(st.Location, q.search) {
			continue
		}
		rows = append(rows, st)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		switch q.sortBy {
		case "location":
			return rows[i].Location < rows[j].Location
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
	page := make([]models.Store, 0, end-start)
	for _, st := range rows[start:end] {
		page = append(page, *st)
	}
	return okList(c, "stores fetched", page, pg)
}

type storePayload struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Manager     string  `json:"manager"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     string  `json:"address"`
}

func (s *Server) createStore(c echo.Context) error {
	var req storePayload
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Location == "" {
		return fail(c, http.StatusBadRequest, "name and location are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := nowStamp()
	st := &models.Store{
		ID:          s.allocID(),
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Manager:     req.Manager,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.stores = append(s.stores, st)
	return ok(c, "store created", *st)
}

func (s *Server) updateStore(c echo.Context) error {
	var req storePayload
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.findStore(req.ID)
	if st == nil {
		return fail(c, http.StatusNotFound, "store not found")
	}
	if req.Name != "" {
		st.Name = req.Name
	}
	if req.Location != "" {
		st.Location = req.Location
	}
	if req.Manager != "" {
		st.Manager = req.Manager
	}
	if req.Address != "" {
		st.Address = req.Address
	}
	st.Description = req.Description
	if req.Phone != nil {
		st.Phone = req.Phone
	}
	if req.Email != nil {
		st.Email = req.Email
	}
	st.UpdatedAt = nowStamp()
	return ok(c, "store updated", *st)
}

func (s *Server) deleteStore(c echo.Context) error {
	var req idRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.findStore(req.ID)
	if st == nil {
		return fail(c, http.StatusNotFound, "store not found")
	}
	now := nowStamp()
	st.DeletedAt = &now
	return ok(c, "store deleted", nil)
}

func (s *Server) storeDetail(c echo.Context) error {
	var req idRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.findStore(req.ID)
	if st == nil {
		return fail(c, http.StatusNotFound, "store not found")
	}
	return ok(c, "store detail", *st)
}

func (s *Server) findStore(id int64) *models.Store {
	for _, st := range s.stores {
		if st.ID == id && st.DeletedAt == nil {
			return st
		}
	}
	return nil
}
