package auth

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"deafso/internal/model"
)

// SessionStoreInterface defines the interface for session persistence.
type SessionStoreInterface interface {
	Record(ctx context.Context, principalID uint, kind model.PrincipalKind, token string, expiresAt time.Time) error
	FindActive(ctx context.Context, kind model.PrincipalKind, token string) (*model.Session, error)
	Revoke(ctx context.Context, kind model.PrincipalKind, token string) (int64, error)
}

// SessionStore keeps issued tokens in the relational store.
type SessionStore struct {
	db  *gorm.DB
	now func() time.Time
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db, now: time.Now}
}

// Record inserts a session row for a freshly issued token.
func (s *SessionStore) Record(ctx context.Context, principalID uint, kind model.PrincipalKind, token string, expiresAt time.Time) error {
	session := &model.Session{
		PrincipalID:   principalID,
		PrincipalKind: kind,
		Token:         token,
		ExpiresAt:     expiresAt,
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// FindActive returns the unexpired session for token, or gorm.ErrRecordNotFound.
// Expired rows are skipped, not deleted.
func (s *SessionStore) FindActive(ctx context.Context, kind model.PrincipalKind, token string) (*model.Session, error) {
	var session model.Session
	err := s.db.WithContext(ctx).
		Where("principal_kind = ? AND token = ? AND expires_at > ?", kind, token, s.now()).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Revoke deletes every session row carrying token. Zero rows is not an error.
func (s *SessionStore) Revoke(ctx context.Context, kind model.PrincipalKind, token string) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("principal_kind = ? AND token = ?", kind, token).
		Delete(&model.Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("revoke session: %w", res.Error)
	}
	return res.RowsAffected, nil
}
