package main

import (
	"log"
	"net/http"
	"os"

	"github.com/codepivot/lecturedeck-api/config"
	"github.com/codepivot/lecturedeck-api/handlers"
	"github.com/codepivot/lecturedeck-api/mail"
	"github.com/codepivot/lecturedeck-api/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	cfg := config.Load()

	db, err := config.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	mailer := &mail.SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
	}

	handler := &handlers.DBHandler{DB: db, Cfg: cfg, Mailer: mailer}
	mux := handlers.NewMux(handler, middleware.Auth(db, cfg.JWTSecret))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Auth-Token", "Accept", "Origin"},
		ExposedHeaders:   []string{"X-Auth-Token"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	serverAddr := "0.0.0.0:" + cfg.Port
	log.Printf("Successfully started the server http://localhost:%s", cfg.Port)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
