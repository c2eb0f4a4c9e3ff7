package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codepivot/lecturedeck-api/auth"
	"github.com/codepivot/lecturedeck-api/config"
	"github.com/codepivot/lecturedeck-api/middleware"
	"github.com/codepivot/lecturedeck-api/models"
	"github.com/codepivot/lecturedeck-api/utils"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-jwt-secret"

type sentMail struct {
	to      string
	subject string
	html    string
}

type fakeMailer struct {
	sent []sentMail
}

func (m *fakeMailer) Send(to, subject, html string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, html: html})
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database so the pool's connections all see the
	// same schema, isolated per test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access underlying DB: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func newTestEnv(t *testing.T) (*DBHandler, *http.ServeMux, *fakeMailer) {
	t.Helper()

	db := newTestDB(t)
	mailer := &fakeMailer{}
	handler := &DBHandler{
		DB:     db,
		Cfg:    config.Config{JWTSecret: testJWTSecret, BaseURL: "http://localhost:8000"},
		Mailer: mailer,
	}
	mux := NewMux(handler, middleware.Auth(db, testJWTSecret))
	return handler, mux, mailer
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		PublicID: uuid.NewString(),
		Email:    email,
		Username: username,
		Password: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

func createTestTopic(t *testing.T, db *gorm.DB, user *models.User, name string) *models.Topic {
	t.Helper()

	topic := models.Topic{
		PublicID:    uuid.NewString(),
		Name:        name,
		Description: "a test topic",
		UserID:      user.ID,
	}
	if err := db.Create(&topic).Error; err != nil {
		t.Fatalf("failed to create test topic: %v", err)
	}
	return &topic
}

func createTestFlashcard(t *testing.T, db *gorm.DB, topic *models.Topic, question, answer string) *models.Flashcard {
	t.Helper()

	flashcard := models.Flashcard{
		PublicID:  uuid.NewString(),
		Question:  question,
		Answer:    answer,
		ColorCode: utils.RandomColorCode(),
		Rating:    models.RatingNeutral,
		TopicID:   topic.ID,
	}
	if err := db.Create(&flashcard).Error; err != nil {
		t.Fatalf("failed to create test flashcard: %v", err)
	}
	return &flashcard
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := auth.CreateToken(user.PublicID, testJWTSecret)
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}
	return token
}

// doRequest runs a request through the mux. A non-empty token is sent the
// way clients send it, in the X-Auth-Token header.
func doRequest(t *testing.T, mux *http.ServeMux, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Auth-Token", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func bodyMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &body)
	return body.Message
}
