package main

import (
	"log"

	"github.com/vishalthakur2004/CarRental-sub001/internal/app"
	"github.com/vishalthakur2004/CarRental-sub001/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("CONFIG_LOAD_FAILED: %v", err)
	}

	if err := app.Run(cfg); err != nil {
		log.Fatalf("APP_RUN_FAILED: %v", err)
	}
}
