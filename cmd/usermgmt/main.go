package main

import (
	"log"

	"github.com/clinicwave/usermgmt/internal/usermgmt/app"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; real environment variables always win.
	_ = godotenv.Load()

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
