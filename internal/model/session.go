package model

import "time"

// Session records one issued bearer token. Rows outlive their expiry until
// matched and skipped; nothing reaps them.
type Session struct {
	ID            uint          `gorm:"primaryKey"`
	PrincipalID   uint          `gorm:"not null;index:idx_sessions_principal,priority:2"`
	PrincipalKind PrincipalKind `gorm:"size:16;not null;index:idx_sessions_principal,priority:1"`
	Token         string        `gorm:"size:512;not null;index"`
	ExpiresAt     time.Time     `gorm:"not null;index"`
	CreatedAt     time.Time
}
