package main

import (
	"log"
	"net/http"

	"github.com/aaronzipp/imposter/internal/config"
	"github.com/aaronzipp/imposter/internal/game"
	"github.com/aaronzipp/imposter/internal/handlers"
	"github.com/aaronzipp/imposter/internal/random"
	"github.com/aaronzipp/imposter/internal/store"
	"github.com/aaronzipp/imposter/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	rotation, err := cfg.RotationPolicy()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	src := random.NewSource(cfg.Seed)
	if cfg.Seed != 0 {
		log.Printf("Using fixed seed %d", cfg.Seed)
	}

	// Load data
	wordRand, err := src.Next()
	if err != nil {
		log.Fatal("Failed to seed word pool:", err)
	}
	pool, err := loadWords(cfg.WordsFile, wordRand)
	if err != nil {
		log.Fatal("Failed to load words:", err)
	}
	log.Printf("Loaded %d categories", len(pool.Categories()))

	ctx := handlers.NewContext(store.NewTableStore(), pool, src, rotation, cfg.BaseURL)
	ctx.Debug = cfg.Debug
	mux := http.NewServeMux()
	ctx.Routes(mux)

	log.Printf("Server starting on http://localhost%s (rotation=%s)", cfg.Addr(), rotation)
	log.Fatal(http.ListenAndServe(cfg.Addr(), mux))
}

func loadWords(path string, rng game.Rand) (*words.Pool, error) {
	if path == "" {
		return words.Default(rng)
	}
	return words.Load(path, rng)
}
