package models

import (
	"time"
)

// PasswordToken is a single-use password reset token. A user can hold at
// most one live token; requesting a new reset replaces it.
type PasswordToken struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"-"`
	Token     string    `gorm:"size:64;not null" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
