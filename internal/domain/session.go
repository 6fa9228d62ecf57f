package domain

import (
	"context"
	"time"
)

// RoleAdmin is the only upstream role allowed into the back office.
const RoleAdmin = 3

// Credentials is the login input forwarded to the upstream API.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identity is the upstream login result: the bearer token used for all
// subsequent upstream calls plus the account it belongs to.
type Identity struct {
	Token string `json:"token"`
	UUID  string `json:"uuid"`
	Email string `json:"email"`
	Role  int    `json:"role"`
}

// AuthService authenticates against the upstream API.
type AuthService interface {
	Login(ctx context.Context, creds Credentials) (*Identity, error)
	Logout(ctx context.Context) error
}

// Session is one persisted back-office session: the upstream bearer token
// and the operator's account id, stored together and cleared together on
// logout. Sessions survive process restarts.
type Session struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserUUID      string    `gorm:"size:36;index;not null" json:"userUuid"`
	Email         string    `gorm:"size:255" json:"email"`
	UpstreamToken string    `gorm:"size:2048;not null" json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SessionStore persists sessions.
type SessionStore interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
