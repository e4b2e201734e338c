package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/emkr-13/sim-admin/internal/models"
)

// UserService reads and edits the logged-in user's profile.
type UserService struct {
	c *Client
}

// Profile fetches the current user record. A non-2xx answer here is how an
// expired token shows itself.
func (s *UserService) Profile(ctx context.Context) (*models.UserProfile, error) {
	req, err := s.c.newRequest(ctx, http.MethodGet, "user/profile", nil, nil, true)
	if err != nil {
		return nil, err
	}
	var env envelope[models.UserProfile]
	if err := s.c.do(req, "user", "profile", &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

type updateProfileRequest struct {
	Fullname string `json:"fullname"`
}

// UpdateProfile changes the mutable fullname field.
func (s *UserService) UpdateProfile(ctx context.Context, fullname string) (*models.UserProfile, error) {
	if strings.TrimSpace(fullname) == "" {
		return nil, &ValidationError{Field: "fullname", Reason: "is required"}
	}
	return postEntity[models.UserProfile](ctx, s.c, "user", "edit", "user/edit", updateProfileRequest{Fullname: fullname})
}
