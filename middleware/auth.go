package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/codepivot/lecturedeck-api/auth"
	"github.com/codepivot/lecturedeck-api/httperr"
	"github.com/codepivot/lecturedeck-api/models"
	"gorm.io/gorm"
)

type contextKey string

const userKey contextKey = "user"

// Auth verifies the bearer token in the X-Auth-Token header, loads the
// matching user and attaches it to the request context.
func Auth(db *gorm.DB, secret string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("X-Auth-Token")
			// The header is sent as "Bearer <token>".
			_, token, found := strings.Cut(header, " ")
			if !found || token == "" {
				httperr.Write(w, httperr.Unauthorized("A Token is required for Authentication!"))
				return
			}

			claims, err := auth.VerifyToken(token, secret)
			if err != nil {
				if err == auth.ErrTokenExpired {
					httperr.Write(w, httperr.Unauthorized("Token has expired"))
				} else {
					httperr.Write(w, httperr.Unauthorized("Token is invalid"))
				}
				return
			}

			var user models.User
			if err := db.Where("public_id = ?", claims.UserID).First(&user).Error; err != nil {
				log.Printf("Auth: no user for token subject %s: %v", claims.UserID, err)
				httperr.Write(w, httperr.Unauthorized("no user exists with this token!"))
				return
			}

			ctx := context.WithValue(r.Context(), userKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// UserFrom returns the authenticated user attached by Auth.
func UserFrom(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userKey).(*models.User)
	return user, ok
}
