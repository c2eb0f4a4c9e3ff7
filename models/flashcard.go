package models

import (
	"time"
)

// Flashcard represents a question/answer pair belonging to a topic
type Flashcard struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PublicID  string    `gorm:"size:36;uniqueIndex;not null" json:"flashcardId"`
	Question  string    `gorm:"not null;size:1000" json:"question"`
	Answer    string    `gorm:"not null;size:1000" json:"answer"`
	ColorCode string    `gorm:"size:10;not null" json:"colorCode"`
	Rating    string    `gorm:"size:20;not null;default:NEUTRAL" json:"rating"`
	TopicID   uint      `gorm:"not null;index" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
