package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/codepivot/lecturedeck-api/httperr"
	"github.com/codepivot/lecturedeck-api/models"
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// shareCodeAttempts bounds the regenerate loop when a generated code
// collides with the unique index on topics.share_code.
const shareCodeAttempts = 3

// GET /api/v1/topics/{topicID}/flashcards/share
//
// Idempotent: once a topic has a share code it is returned unchanged forever.
func (db *DBHandler) ShareTopic(w http.ResponseWriter, r *http.Request) {
	topicID := r.PathValue("topicID")
	if topicID == "" {
		httperr.Write(w, httperr.BadRequest("Incomplete Parameter"))
		return
	}

	var topic models.Topic
	if err := db.Where("public_id = ?", topicID).First(&topic).Error; err != nil {
		httperr.Write(w, httperr.BadRequest("Topic not found"))
		return
	}

	if topic.ShareCode != nil {
		writeJSON(w, http.StatusCreated, map[string]string{"shareCode": *topic.ShareCode})
		return
	}

	code, err := db.issueShareCode(&topic)
	if err != nil {
		log.Printf("ShareTopic: failed to issue share code for topicID=%s: %v", topicID, err)
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"shareCode": code})
}

// issueShareCode writes a share code to a topic that has none. The guarded
// update only lands while share_code is still NULL, so a concurrent issuer
// cannot overwrite a code that already won; the loser re-reads and returns
// the winning code.
func (db *DBHandler) issueShareCode(topic *models.Topic) (string, error) {
	for attempt := 0; attempt < shareCodeAttempts; attempt++ {
		code, err := gonanoid.New()
		if err != nil {
			return "", err
		}

		result := db.Model(&models.Topic{}).
			Where("id = ? AND share_code IS NULL", topic.ID).
			Update("share_code", code)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				continue
			}
			return "", result.Error
		}

		if result.RowsAffected == 0 {
			// Another request issued the code first.
			var fresh models.Topic
			if err := db.First(&fresh, topic.ID).Error; err != nil {
				return "", err
			}
			if fresh.ShareCode == nil {
				return "", errors.New("share code missing after concurrent issue")
			}
			return *fresh.ShareCode, nil
		}

		return code, nil
	}
	return "", errors.New("could not generate a unique share code")
}

// POST /api/v1/topics/{topicID}/flashcards/copy
//
// Clones a shared topic and its flashcards into another user's account.
// The clone, its flashcards and the provenance record are written in one
// transaction: all land or none do.
func (db *DBHandler) CopyTopic(w http.ResponseWriter, r *http.Request) {
	topicID := r.PathValue("topicID")

	var req struct {
		ShareCode string `json:"shareCode"`
		UserID    string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("Incomplete Parameter"))
		return
	}
	req.ShareCode = strings.TrimSpace(req.ShareCode)
	req.UserID = strings.TrimSpace(req.UserID)
	if topicID == "" || req.ShareCode == "" || req.UserID == "" {
		httperr.Write(w, httperr.BadRequest("Incomplete Parameter"))
		return
	}

	var topic models.Topic
	if err := db.Preload("Flashcards").Where("public_id = ?", topicID).First(&topic).Error; err != nil {
		httperr.Write(w, httperr.BadRequest("Invalid Parameter"))
		return
	}

	if topic.ShareCode == nil || *topic.ShareCode != req.ShareCode {
		httperr.Write(w, httperr.BadRequest("Share code does not match"))
		return
	}

	var user models.User
	if err := db.Where("public_id = ?", req.UserID).First(&user).Error; err != nil {
		httperr.Write(w, httperr.BadRequest("User not found"))
		return
	}

	if topic.UserID == user.ID {
		httperr.Write(w, httperr.BadRequest("Topic already exists in user account"))
		return
	}

	var copies int64
	if err := db.Model(&models.CopyRecord{}).
		Where("user_id = ? AND topic_id = ?", user.ID, topic.ID).
		Count(&copies).Error; err != nil {
		httperr.Write(w, err)
		return
	}
	if copies > 0 {
		httperr.Write(w, httperr.BadRequest("Topic already copied before"))
		return
	}

	clone := models.Topic{
		PublicID:    uuid.NewString(),
		Name:        topic.Name,
		Description: topic.Description,
		UserID:      user.ID,
		ShareCode:   nil, // a copy is not shareable by inheritance
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&clone).Error; err != nil {
			return err
		}

		if len(topic.Flashcards) > 0 {
			clones := make([]models.Flashcard, 0, len(topic.Flashcards))
			for _, card := range topic.Flashcards {
				clones = append(clones, models.Flashcard{
					PublicID:  uuid.NewString(),
					Question:  card.Question,
					Answer:    card.Answer,
					ColorCode: card.ColorCode,
					Rating:    card.Rating,
					TopicID:   clone.ID,
				})
			}
			if err := tx.Create(&clones).Error; err != nil {
				return err
			}
		}

		return tx.Create(&models.CopyRecord{UserID: user.ID, TopicID: topic.ID}).Error
	})
	if err != nil {
		log.Printf("CopyTopic: failed to copy topicID=%s for userID=%d: %v", topicID, user.ID, err)
		httperr.Write(w, err)
		return
	}

	log.Printf("CopyTopic: copied topicID=%s to userID=%d as %s", topicID, user.ID, clone.PublicID)
	writeJSON(w, http.StatusCreated, map[string]string{
		"topicId": clone.PublicID,
		"userId":  user.PublicID,
		"status":  "success",
	})
}
