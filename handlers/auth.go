package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"time"

	"github.com/codepivot/lecturedeck-api/auth"
	"github.com/codepivot/lecturedeck-api/httperr"
	"github.com/codepivot/lecturedeck-api/models"
	"github.com/codepivot/lecturedeck-api/utils"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// resetTokenTTL bounds how long a password-reset link stays usable.
const resetTokenTTL = 30 * time.Minute

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

// POST /api/v1/auth/register
func (db *DBHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("Invalid request body"))
		return
	}

	if !validEmail(req.Email) {
		httperr.Write(w, httperr.BadRequest("a valid email is required"))
		return
	}
	if len(req.Username) < 5 || len(req.Username) > 255 {
		httperr.Write(w, httperr.BadRequest("the username must be between 5 and 255 characters"))
		return
	}
	if len(req.Password) < 8 || len(req.Password) > 255 {
		httperr.Write(w, httperr.BadRequest("the minimium length of password is 8"))
		return
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ? OR username = ?", req.Email, req.Username).
		Count(&count).Error; err != nil {
		httperr.Write(w, err)
		return
	}
	if count > 0 {
		httperr.Write(w, httperr.BadRequest("The username or email already exists!"))
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	user := models.User{
		PublicID: uuid.NewString(),
		Email:    req.Email,
		Username: req.Username,
		Password: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Register: failed to create user: %v", err)
		httperr.Write(w, err)
		return
	}

	token, err := auth.CreateToken(user.PublicID, db.Cfg.JWTSecret)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	log.Printf("Register: created user %s", user.Username)
	writeJSON(w, http.StatusCreated, map[string]any{
		"user":    user,
		"message": "Successfully created the user.",
		"token":   token,
	})
}

// POST /api/v1/auth/login
func (db *DBHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("Invalid request body"))
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		httperr.Write(w, httperr.Unauthorized("User could not be authorized"))
		return
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		httperr.Write(w, httperr.BadRequest("password does not match"))
		return
	}

	token, err := auth.CreateToken(user.PublicID, db.Cfg.JWTSecret)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"user":    user,
		"message": "Successfully logged in user.",
		"token":   token,
	})
}

// PATCH /api/v1/auth/password-reset
func (db *DBHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("Invalid request body"))
		return
	}
	if !validEmail(req.Email) {
		httperr.Write(w, httperr.BadRequest("a valid email is required"))
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		httperr.Write(w, httperr.BadRequest("a user with the given email address does not exist!"))
		return
	}

	hash, err := utils.GenerateHexToken(32)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	// One live token per user; a second request replaces the first.
	created := models.PasswordToken{
		UserID:    user.ID,
		Token:     hash,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "expires_at"}),
	}).Create(&created).Error; err != nil {
		httperr.Write(w, err)
		return
	}

	html := fmt.Sprintf(
		`<h3>Lecture Deck</h3> <h1>Password Reset</h1> <div> <p>a password change was requested for your account, please click the button below to reset your password</p> <p>Note: <strong>the link expires in 30 minutes</strong></p> <a href="%s/password-reset/%s/%s">Reset password</a> </div>`,
		db.Cfg.BaseURL, user.PublicID, created.Token,
	)
	if err := db.Mailer.Send(user.Email, "Password Reset Email", html); err != nil {
		log.Printf("ResetPassword: failed to send email to %s: %v", user.Email, err)
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      "Successfully sent a reset email",
		"createdToken": created,
	})
}

// PATCH /api/v1/auth/password-reset/{userID}/{token}
func (db *DBHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequest("Invalid request body"))
		return
	}
	if len(req.Password) < 8 || len(req.Password) > 255 {
		httperr.Write(w, httperr.BadRequest("the minimium length of password is 8"))
		return
	}

	var user models.User
	if err := db.Where("public_id = ?", r.PathValue("userID")).First(&user).Error; err != nil {
		httperr.Write(w, httperr.BadRequest("invalid link or expired"))
		return
	}

	var token models.PasswordToken
	if err := db.Where("user_id = ? AND token = ?", user.ID, r.PathValue("token")).
		First(&token).Error; err != nil {
		httperr.Write(w, httperr.BadRequest("invalid link or expired"))
		return
	}

	// The token is spent whether or not it already expired.
	expired := time.Now().After(token.ExpiresAt)
	if err := db.Delete(&token).Error; err != nil {
		httperr.Write(w, err)
		return
	}
	if expired {
		httperr.Write(w, httperr.BadRequest("expired token, try generating a new one!"))
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if err := db.Model(&user).Update("password", hashed).Error; err != nil {
		httperr.Write(w, err)
		return
	}

	jwtToken, err := auth.CreateToken(user.PublicID, db.Cfg.JWTSecret)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":    user,
		"message": "successfull reset password",
		"token":   jwtToken,
	})
}
