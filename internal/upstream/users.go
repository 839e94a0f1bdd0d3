package upstream

import (
	"context"
	"fmt"

	"github.com/kushal272003/tourbooking/internal/domain"
)

type UsersService struct {
	c *Client
}

type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func (s *UsersService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	err := s.c.post(ctx, "/users/login", nil, body, &out)
	return out, err
}

// Register creates the account; it does not log the user in.
func (s *UsersService) Register(ctx context.Context, req RegisterRequest) (domain.User, error) {
	var out domain.User
	err := s.c.post(ctx, "/users/register", nil, req, &out)
	return out, err
}

func (s *UsersService) Profile(ctx context.Context, userID int64) (domain.User, error) {
	var out domain.User
	err := s.c.get(ctx, fmt.Sprintf("/users/profile/%d", userID), nil, &out)
	return out, err
}

func (s *UsersService) UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (domain.User, error) {
	var out domain.User
	err := s.c.put(ctx, fmt.Sprintf("/users/profile/%d", userID), nil, update, &out)
	return out, err
}

func (s *UsersService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return s.c.put(ctx, fmt.Sprintf("/users/change-password/%d", userID), nil, body, nil)
}
