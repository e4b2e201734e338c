package api

import (
	"context"
	"net/http"
)

// AuthService handles the credential exchange. Login is the only client
// operation that does not require a stored token.
type AuthService struct {
	c *Client
}

// LoginResult is the token pair granted by auth/login.
type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token pair. A 2xx response whose
// envelope says success=false is still a failed login.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	req, err := s.c.newRequest(ctx, http.MethodPost, "auth/login", nil, loginRequest{Email: email, Password: password}, false)
	if err != nil {
		return nil, err
	}
	var env envelope[LoginResult]
	if err := s.c.do(req, "auth", "login", &env); err != nil {
		return nil, err
	}
	if !env.Success || env.Data.Token == "" {
		return nil, ErrLoginFailed
	}
	return &env.Data, nil
}

// Logout invalidates the server-side session for the stored token.
func (s *AuthService) Logout(ctx context.Context) error {
	req, err := s.c.newRequest(ctx, http.MethodPost, "auth/logout", nil, struct{}{}, true)
	if err != nil {
		return err
	}
	return s.c.do(req, "auth", "logout", nil)
}
