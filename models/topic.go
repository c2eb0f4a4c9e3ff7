package models

import (
	"time"
)

// Topic represents a named collection of flashcards owned by a user.
// ShareCode is nil until the owner requests sharing; once written it never
// changes and is unique across all topics.
type Topic struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	PublicID    string    `gorm:"size:36;uniqueIndex;not null" json:"topicId"`
	Name        string    `gorm:"not null;size:100" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	UserID      uint      `gorm:"not null;index" json:"-"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	ShareCode   *string   `gorm:"size:21;uniqueIndex" json:"shareCode,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Flashcards []Flashcard `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"flashcards,omitempty"`
}
