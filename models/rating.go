package models

import "strings"

// Flashcard ratings, stored in their canonical uppercase form.
const (
	RatingVeryBad  = "VERY_BAD"
	RatingBad      = "BAD"
	RatingNeutral  = "NEUTRAL"
	RatingGood     = "GOOD"
	RatingVeryGood = "VERY_GOOD"
)

var validRatings = map[string]bool{
	RatingVeryBad:  true,
	RatingBad:      true,
	RatingNeutral:  true,
	RatingGood:     true,
	RatingVeryGood: true,
}

// ParseRating normalizes a rating to its canonical uppercase form.
// Input is matched case-insensitively; ok is false for unknown ratings.
func ParseRating(s string) (string, bool) {
	rating := strings.ToUpper(strings.TrimSpace(s))
	if !validRatings[rating] {
		return "", false
	}
	return rating, true
}
