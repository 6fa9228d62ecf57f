package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/hirebridge/backoffice/internal/domain"
)

// --- mock upstream auth ---

type mockUpstreamAuth struct {
	identity  *domain.Identity
	loginErr  error
	logoutErr error
	logouts   int
}

func (m *mockUpstreamAuth) Login(_ context.Context, creds domain.Credentials) (*domain.Identity, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.identity, nil
}

func (m *mockUpstreamAuth) Logout(_ context.Context) error {
	m.logouts++
	return m.logoutErr
}

// --- mock session manager ---

type mockSessions struct {
	opened  int
	closed  []string
	openErr error
}

func (m *mockSessions) Open(_ context.Context, id *domain.Identity) (string, error) {
	if m.openErr != nil {
		return "", m.openErr
	}
	m.opened++
	return "console-token", nil
}

func (m *mockSessions) Close(_ context.Context, sessionID string) error {
	m.closed = append(m.closed, sessionID)
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// --- tests ---

func TestLogin(t *testing.T) {
	creds := domain.Credentials{Email: "admin@example.com", Password: "secret"}

	tests := []struct {
		name        string
		identity    *domain.Identity
		loginErr    error
		wantErr     bool
		wantErrCode int
		wantOpened  int
	}{
		{
			name:       "admin account",
			identity:   &domain.Identity{Token: "up-tok", UUID: "u-1", Email: "admin@example.com", Role: domain.RoleAdmin},
			wantOpened: 1,
		},
		{
			name:        "student account rejected",
			identity:    &domain.Identity{Token: "up-tok", UUID: "u-2", Email: "student@example.com", Role: 1},
			wantErr:     true,
			wantErrCode: domain.CodeForbidden,
		},
		{
			name:        "company account rejected",
			identity:    &domain.Identity{Token: "up-tok", UUID: "u-3", Email: "company@example.com", Role: 2},
			wantErr:     true,
			wantErrCode: domain.CodeForbidden,
		},
		{
			name:        "bad credentials pass through",
			loginErr:    domain.NewAppError(domain.CodeUpstream, "wrong email or password", nil),
			wantErr:     true,
			wantErrCode: domain.CodeUpstream,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := &mockUpstreamAuth{identity: tt.identity, loginErr: tt.loginErr}
			sessions := &mockSessions{}
			svc := NewService(upstream, sessions, discard())

			resp, err := svc.Login(context.Background(), creds)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				var appErr *domain.AppError
				if !errors.As(err, &appErr) || appErr.Code != tt.wantErrCode {
					t.Errorf("expected code %d, got %v", tt.wantErrCode, err)
				}
				// A rejected login must never leave a session behind.
				if sessions.opened != 0 {
					t.Errorf("expected no session, got %d", sessions.opened)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Token != "console-token" || resp.UUID != tt.identity.UUID || resp.Email != tt.identity.Email {
				t.Errorf("unexpected response: %+v", resp)
			}
			if resp.Token == tt.identity.Token {
				t.Error("console token must not be the upstream token")
			}
			if sessions.opened != tt.wantOpened {
				t.Errorf("expected %d opened sessions, got %d", tt.wantOpened, sessions.opened)
			}
		})
	}
}

func TestLogout(t *testing.T) {
	sess := &domain.Session{ID: "sess-1", UserUUID: "u-1"}

	t.Run("closes session and runs cleanups", func(t *testing.T) {
		upstream := &mockUpstreamAuth{}
		sessions := &mockSessions{}
		var dropped []string
		svc := NewService(upstream, sessions, discard(), func(id string) {
			dropped = append(dropped, id)
		})

		if err := svc.Logout(context.Background(), sess); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sessions.closed) != 1 || sessions.closed[0] != "sess-1" {
			t.Errorf("expected session closed, got %v", sessions.closed)
		}
		if len(dropped) != 1 || dropped[0] != "sess-1" {
			t.Errorf("expected cleanup run, got %v", dropped)
		}
		if upstream.logouts != 1 {
			t.Errorf("expected upstream logout, got %d", upstream.logouts)
		}
	})

	t.Run("upstream failure does not keep the session alive", func(t *testing.T) {
		upstream := &mockUpstreamAuth{logoutErr: errors.New("boom")}
		sessions := &mockSessions{}
		svc := NewService(upstream, sessions, discard())

		if err := svc.Logout(context.Background(), sess); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sessions.closed) != 1 {
			t.Errorf("expected session closed despite upstream failure, got %v", sessions.closed)
		}
	})
}
