package upstream

import (
	"context"

	"github.com/hirebridge/backoffice/internal/domain"
)

// userService implements domain.UserService against the upstream API.
type userService struct {
	c *Client
}

// NewUserService creates a UserService backed by the given client.
func NewUserService(c *Client) domain.UserService {
	return &userService{c: c}
}

// GetDetail fetches the account record behind a profile.
func (s *userService) GetDetail(ctx context.Context, uuid string) (*domain.User, error) {
	var u domain.User
	if err := s.c.post(ctx, "/User/detail-user", map[string]string{"uuid": uuid}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateStatus flips the lock status of an account. The upstream endpoint
// toggles; the caller re-fetches the record to observe the new value.
func (s *userService) UpdateStatus(ctx context.Context, uuid string) error {
	return s.c.post(ctx, "/User/update-status", map[string]string{"uuid": uuid}, nil)
}
