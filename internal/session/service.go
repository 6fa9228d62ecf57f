// Package session manages back-office sessions: each successful admin login
// persists the upstream bearer token and the operator's account id as one
// session row, and hands the browser a signed console token carrying only
// the session id. The upstream token never leaves the server.
package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hirebridge/backoffice/internal/domain"
)

// Claims are the console token claims. Only the session id is embedded;
// everything else lives in the session row.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Service issues and resolves console tokens and owns the session rows
// behind them.
type Service struct {
	store  domain.SessionStore
	secret []byte
	expiry time.Duration
}

// NewService creates a session Service. Panics if store is nil or secret is
// empty; expiry must be validated by config before it gets here.
func NewService(store domain.SessionStore, secret string, expiry time.Duration) *Service {
	if store == nil {
		panic("session.NewService: store must not be nil")
	}
	if secret == "" {
		panic("session.NewService: secret must not be empty")
	}
	return &Service{
		store:  store,
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Open persists a session for the given upstream identity and returns the
// signed console token.
func (s *Service) Open(ctx context.Context, id *domain.Identity) (string, error) {
	sess := &domain.Session{
		ID:            uuid.NewString(),
		UserUUID:      id.UUID,
		Email:         id.Email,
		UpstreamToken: id.Token,
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		SessionID: sess.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		// The row is unusable without a token; drop it again.
		_ = s.store.Delete(ctx, sess.ID)
		return "", domain.NewAppError(domain.CodeInternal, "sign session token", err)
	}
	return signed, nil
}

// Resolve parses a console token and loads its session row. Any parse or
// lookup failure maps to unauthorized: the gate treats all of them the same.
func (s *Service) Resolve(ctx context.Context, tokenString string) (*domain.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domain.NewAppError(domain.CodeUnauthorized, "invalid session token", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, domain.ErrUnauthorized
	}

	sess, err := s.store.Get(ctx, claims.SessionID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeUnauthorized, "session no longer exists", err)
		}
		return nil, err
	}
	return sess, nil
}

// Close deletes the session row. The token and the stored account id are
// cleared together; the console token becomes useless immediately.
func (s *Service) Close(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
