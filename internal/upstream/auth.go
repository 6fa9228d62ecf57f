package upstream

import (
	"context"

	"github.com/hirebridge/backoffice/internal/domain"
)

// authService implements domain.AuthService against the upstream API.
type authService struct {
	c *Client
}

// NewAuthService creates an AuthService backed by the given client.
func NewAuthService(c *Client) domain.AuthService {
	return &authService{c: c}
}

// Login exchanges credentials for an upstream bearer token.
func (s *authService) Login(ctx context.Context, creds domain.Credentials) (*domain.Identity, error) {
	var id domain.Identity
	if err := s.c.post(ctx, "/auth/login", creds, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// Logout invalidates the bearer token carried by ctx on the upstream side.
func (s *authService) Logout(ctx context.Context) error {
	return s.c.post(ctx, "/auth/logout", nil, nil)
}
