package stub

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/emkr-13/sim-admin/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "email and password are required")
	}

	s.mu.Lock()
	u := s.users[req.Email]
	s.mu.Unlock()
	if u == nil || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		return fail(c, http.StatusUnauthorized, "invalid email or password")
	}

	claims := jwt.MapClaims{
		"sub": u.Email,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(12 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "token generation failed")
	}

	s.mu.Lock()
	s.tokens[token] = u.Email
	s.mu.Unlock()

	return ok(c, "login success", map[string]string{
		"token":        token,
		"refreshToken": uuid.NewString(),
	})
}

func (s *Server) logout(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, _ := strings.CutPrefix(header, "Bearer ")

	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()

	return ok(c, "logout success", nil)
}

func (s *Server) profile(c echo.Context) error {
	u := s.currentUser(c)
	if u == nil {
		return fail(c, http.StatusUnauthorized, "unknown user")
	}
	return ok(c, "profile fetched", models.UserProfile{
		Email:       u.Email,
		Fullname:    u.Fullname,
		UserCreated: u.CreatedAt.UTC().Format(time.RFC3339),
	})
}

type editProfileRequest struct {
	Fullname string `json:"fullname"`
}

func (s *Server) editProfile(c echo.Context) error {
	var req editProfileRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Fullname) == "" {
		return fail(c, http.StatusBadRequest, "fullname is required")
	}

	u := s.currentUser(c)
	if u == nil {
		return fail(c, http.StatusUnauthorized, "unknown user")
	}

	s.mu.Lock()
	u.Fullname = req.Fullname
	s.mu.Unlock()

	return ok(c, "profile updated", models.UserProfile{
		Email:       u.Email,
		Fullname:    req.Fullname,
		UserCreated: u.CreatedAt.UTC().Format(time.RFC3339),
	})
}
