package models

import (
	"time"
)

// CopyRecord records that a user has copied a topic. Rows are append-only;
// the composite unique index is what stops two concurrent copy requests for
// the same user and topic from both committing.
type CopyRecord struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_copy_user_topic" json:"-"`
	TopicID   uint      `gorm:"not null;uniqueIndex:idx_copy_user_topic" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
