package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/codepivot/lecturedeck-api/models"
)

func TestCreateTopic(t *testing.T) {
	h, mux, _ := newTestEnv(t)
	user := createTestUser(t, h.DB, "alice2024", "alice@example.com")

	rec := doRequest(t, mux, http.MethodPost, "/api/v1/topics/manual-create",
		map[string]string{"title": "Biology 101", "description": "Intro to biology"}, tokenFor(t, user))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Topic  models.Topic `json:"topic"`
		Status string       `json:"status"`
	}
	decodeBody(t, rec, &body)
	if body.Status != "success" {
		t.Fatalf("unexpected status: %q", body.Status)
	}
	if body.Topic.PublicID == "" || body.Topic.Name != "Biology 101" {
		t.Fatalf("unexpected topic payload: %+v", body.Topic)
	}
	if body.Topic.ShareCode != nil {
		t.Fatal("a new topic must not have a share code")
	}
}

func TestCreateTopicMissingFields(t *testing.T) {
	h, mux, _ := newTestEnv(t)
	user := createTestUser(t, h.DB, "alice2024", "alice@example.com")

	rec := doRequest(t, mux, http.MethodPost, "/api/v1/topics/manual-create",
		map[string]string{"title": "", "description": "  "}, tokenFor(t, user))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestCreateTopicRequiresAuth(t *testing.T) {
	_, mux, _ := newTestEnv(t)

	rec := doRequest(t, mux, http.MethodPost, "/api/v1/topics/manual-create",
		map[string]string{"title": "Biology 101", "description": "x"}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	if msg := bodyMessage(t, rec); msg != "A Token is required for Authentication!" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestGetTopicsPagination(t *testing.T) {
	h, mux, _ := newTestEnv(t)
	user := createTestUser(t, h.DB, "alice2024", "alice@example.com")
	for i := 0; i < 12; i++ {
		createTestTopic(t, h.DB, user, fmt.Sprintf("Topic %02d", i))
	}
	token := tokenFor(t, user)

	var body struct {
		Data     []models.Topic `json:"data"`
		Page     int            `json:"page"`
		Pages    int            `json:"pages"`
		PageSize int            `json:"pageSize"`
	}

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/topics", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("page 1: expected status 200, got %d", rec.Code)
	}
	decodeBody(t, rec, &body)
	if len(body.Data) != 10 || body.Page != 1 || body.Pages != 2 || body.PageSize != 10 {
		t.Fatalf("page 1: unexpected paging %d items, page=%d pages=%d size=%d",
			len(body.Data), body.Page, body.Pages, body.PageSize)
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/v1/topics?page=2", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("page 2: expected status 200, got %d", rec.Code)
	}
	decodeBody(t, rec, &body)
	if len(body.Data) != 2 || body.PageSize != 2 {
		t.Fatalf("page 2: expected 2 items, got %d", len(body.Data))
	}

	cases := []struct {
		query   string
		message string
	}{
		{"?page=3", "Page query exceeds max page number of 2"},
		{"?page=0", "Page query must be a positive number"},
		{"?page=abc", "Page query must be a number"},
	}
	for _, tc := range cases {
		rec = doRequest(t, mux, http.MethodGet, "/api/v1/topics"+tc.query, nil, token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", tc.query, rec.Code)
		}
		if msg := bodyMessage(t, rec); msg != tc.message {
			t.Fatalf("%s: unexpected message %q", tc.query, msg)
		}
	}
}

func TestUpdateTopic(t *testing.T) {
	h, mux, _ := newTestEnv(t)
	user := createTestUser(t, h.DB, "alice2024", "alice@example.com")
	topic := createTestTopic(t, h.DB, user, "Biology 101")
	token := tokenFor(t, user)

	rec := doRequest(t, mux, http.MethodPatch, "/api/v1/topics/"+topic.PublicID,
		map[string]string{"title": "Biology 102"}, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var stored models.Topic
	if err := h.DB.First(&stored, topic.ID).Error; err != nil {
		t.Fatalf("failed to reload topic: %v", err)
	}
	if stored.Name != "Biology 102" {
		t.Fatalf("title not updated: %q", stored.Name)
	}
	if stored.Description != topic.Description {
		t.Fatalf("description changed unexpectedly: %q", stored.Description)
	}

	rec = doRequest(t, mux, http.MethodPatch, "/api/v1/topics/"+topic.PublicID,
		map[string]string{}, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty update: expected status 400, got %d", rec.Code)
	}
	if msg := bodyMessage(t, rec); msg != "No data to update" {
		t.Fatalf("empty update: unexpected message %q", msg)
	}
}

func TestUpdateTopicNotOwned(t *testing.T) {
	h, mux, _ := newTestEnv(t)
	alice := createTestUser(t, h.DB, "alice2024", "alice@example.com")
	bob := createTestUser(t, h.DB, "bobby2024", "bob@example.com")
	topic := createTestTopic(t, h.DB, alice, "Biology 101")

	rec := doRequest(t, mux, http.MethodPatch, "/api/v1/topics/"+topic.PublicID,
		map[string]string{"title": "Hijacked"}, tokenFor(t, bob))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if msg := bodyMessage(t, rec); msg != "User does not have the topic" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestDeleteTopic(t *testing.T) {
	h, mux, _ := newTestEnv(t)
	user := createTestUser(t, h.DB, "alice2024", "alice@example.com")
	topic := createTestTopic(t, h.DB, user, "Biology 101")
	createTestFlashcard(t, h.DB, topic, "What is a cell?", "The basic unit of life")
	createTestFlashcard(t, h.DB, topic, "What is DNA?", "Deoxyribonucleic acid")

	rec := doRequest(t, mux, http.MethodDelete, "/api/v1/topics/"+topic.PublicID, nil, tokenFor(t, user))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := bodyMessage(t, rec); msg != "Topic deleted" {
		t.Fatalf("unexpected message: %q", msg)
	}

	var topics, cards int64
	h.DB.Model(&models.Topic{}).Count(&topics)
	h.DB.Model(&models.Flashcard{}).Where("topic_id = ?", topic.ID).Count(&cards)
	if topics != 0 {
		t.Fatal("topic still present after delete")
	}
	if cards != 0 {
		t.Fatal("flashcards still present after topic delete")
	}
}

func TestGetFlashcardsForTopic(t *testing.T) {
	h, mux, _ := newTestEnv(t)
	user := createTestUser(t, h.DB, "alice2024", "alice@example.com")
	topic := createTestTopic(t, h.DB, user, "Biology 101")
	createTestFlashcard(t, h.DB, topic, "What is a cell?", "The basic unit of life")
	token := tokenFor(t, user)

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/topics/"+topic.PublicID+"/flashcards", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data   []models.Flashcard `json:"data"`
		Status string             `json:"status"`
	}
	decodeBody(t, rec, &body)
	if len(body.Data) != 1 || body.Status != "success" {
		t.Fatalf("unexpected payload: %+v", body)
	}

	empty := createTestTopic(t, h.DB, user, "Empty Topic")
	rec = doRequest(t, mux, http.MethodGet, "/api/v1/topics/"+empty.PublicID+"/flashcards", nil, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty topic: expected status 400, got %d", rec.Code)
	}
	if msg := bodyMessage(t, rec); msg != "No flashcards for the topic" {
		t.Fatalf("empty topic: unexpected message %q", msg)
	}
}
