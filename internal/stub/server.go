// Package stub is an in-memory double of the inventory backend. It exists
// for local development and integration tests; the real backend stays a
// separate collaborator. It implements the documented contract: bearer
// auth, {success, message, data} envelopes, and the pagination block with
// its 0-sentinels and detail window.
package stub

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/emkr-13/sim-admin/internal/models"
)

type user struct {
	Email        string
	Fullname     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Server holds the in-memory tables behind one mutex. Handlers are
// registered on the echo instance returned by Handler.
type Server struct {
	jwtSecret []byte

	mu         sync.Mutex
	users      map[string]*user
	tokens     map[string]string // active access token -> email
	accounts   []*models.Account
	categories []*models.Category
	products   []*models.Product
	stores     []*models.Store
	movements  []*models.StockMovement
	quotations []*models.Quotation
	nextID     int64
}

// New creates a seeded server. The seed includes the admin login
// (admin@mail.com / password123) and a handful of demo rows per resource.
func New() *Server {
	s := &Server{
		jwtSecret: []byte("sim-stub-secret"),
		users:     make(map[string]*user),
		tokens:    make(map[string]string),
		nextID:    1,
	}
	s.seed()
	return s
}

// Handler builds the echo instance with all routes registered.
func (s *Server) Handler() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	api := e.Group("/api")
	api.POST("/auth/login", s.login)

	authed := api.Group("", s.requireAuth)
	authed.POST("/auth/logout", s.logout)
	authed.GET("/user/profile", s.profile)
	authed.POST("/user/edit", s.editProfile)

	authed.GET("/akun/all", s.listAccounts)
	authed.POST("/akun/create", s.createAccount)
	authed.POST("/akun/edit", s.updateAccount)
	authed.POST("/akun/delete", s.deleteAccount)
	authed.POST("/akun/detail", s.accountDetail)

	authed.GET("/categories/all", s.listCategories)
	authed.POST("/categories/create", s.createCategory)
	authed.POST("/categories/update", s.updateCategory)
	authed.POST("/categories/delete", s.deleteCategory)
	authed.POST("/categories/detail", s.categoryDetail)

	authed.GET("/products/all", s.listProducts)
	authed.POST("/products/create", s.createProduct)
	authed.POST("/products/update", s.updateProduct)
	authed.POST("/products/delete", s.deleteProduct)
	authed.POST("/products/detail", s.productDetail)
	authed.GET("/products/export/pdf", s.exportProductsPDF)
	authed.GET("/products/export/excel", s.exportProductsExcel)

	authed.GET("/store/all", s.listStores)
	authed.POST("/store/create", s.createStore)
	authed.POST("/store/update", s.updateStore)
	authed.POST("/store/delete", s.deleteStore)
	authed.POST("/store/detail", s.storeDetail)

	authed.GET("/stock-movements/all", s.listMovements)
	authed.POST("/stock-movements/detail", s.movementDetail)

	authed.GET("/quotations/all", s.listQuotations)
	authed.POST("/quotations/detail", s.quotationDetail)

	return e
}

// response is the uniform envelope.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func ok(c echo.Context, msg string, data any) error {
	return c.JSON(http.StatusOK, response{Success: true, Message: msg, Data: data})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, response{Success: false, Message: msg})
}

// okList wraps rows and pagination the way list endpoints answer.
func okList(c echo.Context, msg string, rows any, pg *models.PaginationData) error {
	return ok(c, msg, map[string]any{"data": rows, "pagination": pg})
}

// requireAuth rejects requests whose bearer token is unknown, revoked or
// expired.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return fail(c, http.StatusUnauthorized, "authentication required")
		}

		s.mu.Lock()
		email, active := s.tokens[token]
		s.mu.Unlock()
		if !active {
			return fail(c, http.StatusUnauthorized, "invalid or revoked token")
		}

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
			return s.jwtSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !parsed.Valid {
			return fail(c, http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set("email", email)
		return next(c)
	}
}

func (s *Server) currentUser(c echo.Context) *user {
	email, _ := c.Get("email").(string)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[email]
}

func (s *Server) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
