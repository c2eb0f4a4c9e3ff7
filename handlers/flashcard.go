package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/codepivot/lecturedeck-api/httperr"
	"github.com/codepivot/lecturedeck-api/middleware"
	"github.com/codepivot/lecturedeck-api/models"
	"github.com/codepivot/lecturedeck-api/utils"
	"github.com/google/uuid"
)

// POST /api/v1/flashcards/manual-create
func (db *DBHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		httperr.Write(w, httperr.Unauthorized("Unauthorized"))
		return
	}

	var req struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
		TopicID  string `json:"topicId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("Invalid request body"))
		return
	}

	if len(req.Question) < 5 {
		httperr.Write(w, httperr.BadRequest("the question must be at least 5 characters"))
		return
	}
	if req.Answer == "" || req.TopicID == "" {
		httperr.Write(w, httperr.BadRequest("answer and topicId are required"))
		return
	}

	var topic models.Topic
	if err := db.Where("public_id = ? AND user_id = ?", req.TopicID, user.ID).First(&topic).Error; err != nil {
		httperr.Write(w, httperr.NotFound("User does not have the topic"))
		return
	}

	flashcard := models.Flashcard{
		PublicID:  uuid.NewString(),
		Question:  req.Question,
		Answer:    req.Answer,
		ColorCode: utils.RandomColorCode(),
		Rating:    models.RatingNeutral,
		TopicID:   topic.ID,
	}
	if err := db.Create(&flashcard).Error; err != nil {
		log.Printf("CreateFlashcard: failed to create flashcard for topicID=%s: %v", req.TopicID, err)
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"flashcard": flashcard,
		"status":    "success",
	})
}

// findOwnedFlashcard resolves a flashcard by public id and checks that its
// topic belongs to the user.
func (db *DBHandler) findOwnedFlashcard(userID uint, flashcardID string) (*models.Flashcard, error) {
	var flashcard models.Flashcard
	if err := db.Where("public_id = ?", flashcardID).First(&flashcard).Error; err != nil {
		return nil, httperr.NotFound("Flashcard not found")
	}

	var topic models.Topic
	if err := db.Where("id = ? AND user_id = ?", flashcard.TopicID, userID).First(&topic).Error; err != nil {
		return nil, httperr.Unauthorized("User does not own the flashcard")
	}

	return &flashcard, nil
}

// PATCH /api/v1/flashcards/{flashcardID}
func (db *DBHandler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		httperr.Write(w, httperr.Unauthorized("Unauthorized"))
		return
	}

	flashcard, err := db.findOwnedFlashcard(user.ID, r.PathValue("flashcardID"))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	// An empty body is fine; the current row is returned untouched.
	var req struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	if req.Question != "" {
		flashcard.Question = req.Question
	}
	if req.Answer != "" {
		flashcard.Answer = req.Answer
	}
	if req.Question != "" || req.Answer != "" {
		if err := db.Save(flashcard).Error; err != nil {
			httperr.Write(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"flashcards": flashcard,
		"status":     "success",
	})
}

// PATCH /api/v1/flashcards/{flashcardID}/rating
func (db *DBHandler) UpdateFlashcardRating(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		httperr.Write(w, httperr.Unauthorized("Unauthorized"))
		return
	}

	flashcard, err := db.findOwnedFlashcard(user.ID, r.PathValue("flashcardID"))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	var req struct {
		Rating string `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("Invalid request body"))
		return
	}

	rating, ok := models.ParseRating(req.Rating)
	if !ok {
		httperr.Write(w, httperr.BadRequest("rating must be one of VERY_BAD, BAD, NEUTRAL, GOOD, VERY_GOOD"))
		return
	}

	if err := db.Model(flashcard).Update("rating", rating).Error; err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"flashcards": flashcard,
		"status":     "success",
	})
}

// DELETE /api/v1/flashcards/{flashcardID}
func (db *DBHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		httperr.Write(w, httperr.Unauthorized("Unauthorized"))
		return
	}

	flashcardID := r.PathValue("flashcardID")
	flashcard, err := db.findOwnedFlashcard(user.ID, flashcardID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	if err := db.Delete(flashcard).Error; err != nil {
		log.Printf("DeleteFlashcard: failed to delete flashcardID=%s: %v", flashcardID, err)
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"flashcardId": flashcardID,
		"status":      "success",
	})
}
