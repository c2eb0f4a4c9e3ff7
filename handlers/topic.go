package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/codepivot/lecturedeck-api/httperr"
	"github.com/codepivot/lecturedeck-api/middleware"
	"github.com/codepivot/lecturedeck-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const topicsPerPage = 10

// GET /api/v1/topics?page=N
func (db *DBHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		httperr.Write(w, httperr.Unauthorized("Unauthorized"))
		return
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.Write(w, httperr.BadRequest("Page query must be a number"))
			return
		}
		page = parsed
	}
	if page <= 0 {
		httperr.Write(w, httperr.BadRequest("Page query must be a positive number"))
		return
	}

	var total int64
	if err := db.Model(&models.Topic{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		httperr.Write(w, err)
		return
	}

	maxPage := int(math.Ceil(float64(total) / topicsPerPage))
	if page > maxPage {
		httperr.Write(w, httperr.BadRequest(fmt.Sprintf("Page query exceeds max page number of %d", maxPage)))
		return
	}

	var topics []models.Topic
	if err := db.Where("user_id = ?", user.ID).
		Offset((page - 1) * topicsPerPage).
		Limit(topicsPerPage).
		Find(&topics).Error; err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":     topics,
		"status":   "success",
		"page":     page,
		"pages":    maxPage,
		"pageSize": len(topics),
	})
}

// POST /api/v1/topics/manual-create
func (db *DBHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		httperr.Write(w, httperr.Unauthorized("Unauthorized"))
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("Invalid request body"))
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" {
		httperr.Write(w, httperr.BadRequest("title and description are required"))
		return
	}

	topic := models.Topic{
		PublicID:    uuid.NewString(),
		Name:        req.Title,
		Description: req.Description,
		UserID:      user.ID,
	}
	if err := db.Create(&topic).Error; err != nil {
		log.Printf("CreateTopic: failed to create topic for userID=%d: %v", user.ID, err)
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"topic":  topic,
		"status": "success",
	})
}

// PATCH /api/v1/topics/{topicID}
func (db *DBHandler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		httperr.Write(w, httperr.Unauthorized("Unauthorized"))
		return
	}

	topicID := r.PathValue("topicID")
	var topic models.Topic
	if err := db.Where("public_id = ? AND user_id = ?", topicID, user.ID).First(&topic).Error; err != nil {
		httperr.Write(w, httperr.BadRequest("User does not have the topic"))
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("Invalid request body"))
		return
	}

	if req.Title == "" && req.Description == "" {
		httperr.Write(w, httperr.BadRequest("No data to update"))
		return
	}

	updates := map[string]any{}
	if req.Title != "" {
		topic.Name = req.Title
		updates["name"] = req.Title
	}
	if req.Description != "" {
		topic.Description = req.Description
		updates["description"] = req.Description
	}
	// Column-scoped update so a concurrently issued share code is never
	// overwritten by this stale struct.
	if err := db.Model(&topic).Updates(updates).Error; err != nil {
		log.Printf("UpdateTopic: failed to update topicID=%s: %v", topicID, err)
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"updatedTopic": topic,
		"status":       "success",
	})
}

// DELETE /api/v1/topics/{topicID}
func (db *DBHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		httperr.Write(w, httperr.Unauthorized("Unauthorized"))
		return
	}

	topicID := r.PathValue("topicID")
	var topic models.Topic
	if err := db.Where("public_id = ? AND user_id = ?", topicID, user.ID).First(&topic).Error; err != nil {
		httperr.Write(w, httperr.BadRequest("User does not have the topic"))
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("topic_id = ?", topic.ID).Delete(&models.Flashcard{}).Error; err != nil {
			return err
		}
		return tx.Delete(&topic).Error
	})
	if err != nil {
		log.Printf("DeleteTopic: failed to delete topicID=%s: %v", topicID, err)
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Topic deleted",
	})
}

// GET /api/v1/topics/{topicID}/flashcards
func (db *DBHandler) GetFlashcardsForTopic(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		httperr.Write(w, httperr.Unauthorized("Unauthorized"))
		return
	}

	topicID := r.PathValue("topicID")
	var topic models.Topic
	if err := db.Where("public_id = ? AND user_id = ?", topicID, user.ID).First(&topic).Error; err != nil {
		httperr.Write(w, httperr.BadRequest("User does not have the topic"))
		return
	}

	var flashcards []models.Flashcard
	if err := db.Where("topic_id = ?", topic.ID).Find(&flashcards).Error; err != nil {
		httperr.Write(w, err)
		return
	}
	if len(flashcards) == 0 {
		httperr.Write(w, httperr.BadRequest("No flashcards for the topic"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":   flashcards,
		"status": "success",
	})
}
