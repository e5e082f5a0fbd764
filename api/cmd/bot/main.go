package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"paper-grader/api/internal/config"
	"paper-grader/api/internal/grader"
	"paper-grader/api/internal/ocr"
	ocrgemini "paper-grader/api/internal/ocr/gemini"
	scoregemini "paper-grader/api/internal/score/gemini"
	"paper-grader/api/internal/store"
	"paper-grader/api/internal/telegram"
)

func main() {
	cfg := config.Load()

	if cfg.TelegramBotToken == "" {
		log.Fatal("missing required env TELEGRAM_BOT_TOKEN")
	}

	engines := &ocr.Engines{
		Gemini: ocrgemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
	}
	g := grader.New(engines, scoregemini.New(cfg.GeminiAPIKey, cfg.EmbedModel))

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
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false

	r := &telegram.Router{Bot: bot, Grader: g}

	// healthz для платформы
	go func() {
		http.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		log.Fatal(http.ListenAndServe(":"+cfg.Port, nil))
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := bot.GetUpdatesChan(u)

	log.Printf("bot @%s started", bot.Self.UserName)
	for upd := range updates {
		go r.HandleUpdate(upd)
	}
}
