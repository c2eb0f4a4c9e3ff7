package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/codepivot/lecturedeck-api/config"
	"github.com/codepivot/lecturedeck-api/httperr"
	"github.com/codepivot/lecturedeck-api/mail"
	"gorm.io/gorm"
)

type DBHandler struct {
	*gorm.DB
	Cfg    config.Config
	Mailer mail.Mailer
}

// Middleware wraps a handler, e.g. the auth gate built in middleware.Auth.
type Middleware func(http.HandlerFunc) http.HandlerFunc

// NewMux wires every route. The share and copy endpoints sit outside the
// auth gate, mirroring where the route table mounts the auth middleware.
func NewMux(h *DBHandler, authware Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "welcome to v1 of the lectureDeck api!"})
	})

	// Auth
	mux.HandleFunc("POST /api/v1/auth/register", h.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Login)
	mux.HandleFunc("PATCH /api/v1/auth/password-reset", h.ResetPassword)
	mux.HandleFunc("PATCH /api/v1/auth/password-reset/{userID}/{token}", h.UpdatePassword)

	// Topic sharing
	mux.HandleFunc("GET /api/v1/topics/{topicID}/flashcards/share", h.ShareTopic)
	mux.HandleFunc("POST /api/v1/topics/{topicID}/flashcards/copy", h.CopyTopic)

	// Topics
	mux.HandleFunc("GET /api/v1/topics", authware(h.GetTopics))
	mux.HandleFunc("POST /api/v1/topics/manual-create", authware(h.CreateTopic))
	mux.HandleFunc("PATCH /api/v1/topics/{topicID}", authware(h.UpdateTopic))
	mux.HandleFunc("DELETE /api/v1/topics/{topicID}", authware(h.DeleteTopic))
	mux.HandleFunc("GET /api/v1/topics/{topicID}/flashcards", authware(h.GetFlashcardsForTopic))

	// Flashcards
	mux.HandleFunc("POST /api/v1/flashcards/manual-create", authware(h.CreateFlashcard))
	mux.HandleFunc("PATCH /api/v1/flashcards/{flashcardID}", authware(h.UpdateFlashcard))
	mux.HandleFunc("PATCH /api/v1/flashcards/{flashcardID}/rating", authware(h.UpdateFlashcardRating))
	mux.HandleFunc("DELETE /api/v1/flashcards/{flashcardID}", authware(h.DeleteFlashcard))

	// Catch-all
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperr.Write(w, httperr.NotFound(fmt.Sprintf("invalid route! %s", r.URL.Path)))
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
