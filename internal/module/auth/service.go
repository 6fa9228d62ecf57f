package auth

import (
	"context"
	"log/slog"

	"github.com/hirebridge/backoffice/internal/domain"
)

// SessionManager issues and revokes console sessions.
type SessionManager interface {
	Open(ctx context.Context, id *domain.Identity) (string, error)
	Close(ctx context.Context, sessionID string) error
}

// CleanupFunc releases per-session server state (list views, caches) when a
// session is closed.
type CleanupFunc func(sessionID string)

// Service handles operator login and logout.
type Service struct {
	upstream domain.AuthService
	sessions SessionManager
	logger   *slog.Logger
	cleanups []CleanupFunc
}

// NewService creates an auth Service. Panics if upstream, sessions or logger
// is nil.
func NewService(upstream domain.AuthService, sessions SessionManager, logger *slog.Logger, cleanups ...CleanupFunc) *Service {
	if upstream == nil {
		panic("auth.NewService: upstream must not be nil")
	}
	if sessions == nil {
		panic("auth.NewService: sessions must not be nil")
	}
	if logger == nil {
		panic("auth.NewService: logger must not be nil")
	}
	return &Service{
		upstream: upstream,
		sessions: sessions,
		logger:   logger,
		cleanups: cleanups,
	}
}

// Login forwards credentials to the upstream API and opens a console session
// for the returned identity. Non-administrator accounts are rejected and no
// session is persisted for them, even though their credentials were valid.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (*LoginResponse, error) {
	id, err := s.upstream.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	if id.Role != domain.RoleAdmin {
		s.logger.WarnContext(ctx, "login rejected for non-administrator account",
			slog.String("user_uuid", id.UUID),
			slog.Int("role", id.Role),
		)
		return nil, domain.NewAppError(domain.CodeForbidden, "account is not an administrator", nil)
	}

	token, err := s.sessions.Open(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "operator logged in", slog.String("user_uuid", id.UUID))

	return &LoginResponse{
		Token: token,
		UUID:  id.UUID,
		Email: id.Email,
	}, nil
}

// Logout closes the given session and releases the server state attached to
// it. The upstream logout call is best-effort: the console session dies
// regardless of whether the upstream accepted the revocation.
func (s *Service) Logout(ctx context.Context, sess *domain.Session) error {
	if err := s.upstream.Logout(ctx); err != nil {
		s.logger.WarnContext(ctx, "upstream logout failed",
			slog.String("session_id", sess.ID),
			slog.Any("error", err),
		)
	}

	if err := s.sessions.Close(ctx, sess.ID); err != nil {
		return err
	}

	for _, cleanup := range s.cleanups {
		cleanup(sess.ID)
	}

	s.logger.InfoContext(ctx, "operator logged out", slog.String("user_uuid", sess.UserUUID))
	return nil
}
