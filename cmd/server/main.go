package main

import (
	"log"

	"github.com/xugehan/english-related-generator/config"
	"github.com/xugehan/english-related-generator/history"
	"github.com/xugehan/english-related-generator/server"
)

func main() {
	cfg := config.Load()

	store, err := history.Open(cfg.DBPath, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	srv := server.New(cfg, store)
	log.Printf("Listening on :%s", cfg.ServerPort)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
