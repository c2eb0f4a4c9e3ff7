package models

import (
	"time"
)

// User represents a registered account in the system
type User struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	PublicID string    `gorm:"size:36;uniqueIndex;not null" json:"userId"`
	Email    string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username string    `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Password string    `gorm:"size:255;not null" json:"-"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joinedAt"`

	Topics []Topic `gorm:"foreignKey:UserID" json:"-"`
}
