package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/elifesajna/self-employ-final/internal/app"
	"github.com/elifesajna/self-employ-final/internal/config"
	"github.com/elifesajna/self-employ-final/internal/logging"
)

func main() {
	// .env is optional; deployment sets real environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer logger.Sync()

	if err := app.Run(cfg, logger); err != nil {
		log.Fatalf("app: %v", err)
	}
}
