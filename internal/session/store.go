package session

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hirebridge/backoffice/internal/domain"
)

// gormStore implements domain.SessionStore using GORM. Sessions are
// persisted so operators stay signed in across process restarts.
type gormStore struct {
	db *gorm.DB
}

// NewStore creates a SessionStore backed by the given GORM database.
func NewStore(db *gorm.DB) domain.SessionStore {
	return &gormStore{db: db}
}

// Create inserts a new session row.
func (s *gormStore) Create(ctx context.Context, sess *domain.Session) error {
	if err := s.db.WithContext(ctx).Create(sess).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// Get retrieves a session by its id.
func (s *gormStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	var sess domain.Session
	if err := s.db.WithContext(ctx).First(&sess, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &sess, nil
}

// Delete removes a session by id. Deleting an absent session is not an
// error: logout must be idempotent.
func (s *gormStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&domain.Session{}, "id = ?", id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	return nil
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return domain.NewAppError(domain.CodeInternal, "session store error", err)
}
