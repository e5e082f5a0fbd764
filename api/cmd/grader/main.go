package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"paper-grader/api/internal/config"
	"paper-grader/api/internal/grader"
	"paper-grader/api/internal/handle"
	"paper-grader/api/internal/ocr"
	ocrgemini "paper-grader/api/internal/ocr/gemini"
	ocrgpt "paper-grader/api/internal/ocr/gpt"
	"paper-grader/api/internal/score"
	scoregemini "paper-grader/api/internal/score/gemini"
	scoregpt "paper-grader/api/internal/score/gpt"
	"paper-grader/api/internal/store"
)

func main() {
	cfg := config.Load()

	engines := &ocr.Engines{
		Gemini: ocrgemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
	}
	if cfg.OpenAIAPIKey != "" {
		engines.OpenAI = ocrgpt.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	var scorer score.Scorer
	switch cfg.Scorer {
	case "gpt", "openai":
		scorer = scoregpt.New(cfg.OpenAIAPIKey, cfg.OpenAIEmbed)
	default:
		scorer = scoregemini.New(cfg.GeminiAPIKey, cfg.EmbedModel)
	}

	g := grader.New(engines, scorer)

	// Кэш извлечений — только если задан DSN
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("sql.Open: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		repo := store.NewExtractRepo(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		g.Cache = repo
		log.Printf("extraction cache enabled")
	}

	h := handle.New(g)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/grade", h.Grade)
	mux.HandleFunc("/grade-batch", h.GradeBatch)

	addr := ":" + cfg.Port
	log.Printf("paper-grader listening on %s (ocr=%s, scorer=%s)", addr, cfg.GeminiModel, scorer.Name())
	log.Fatal(http.ListenAndServe(addr, mux))
}
