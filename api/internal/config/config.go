package config

import (
	"log"
	"os"
)

type Config struct {
	Port string

	GeminiAPIKey string
	GeminiModel  string
	EmbedModel   string

	OpenAIAPIKey string
	OpenAIModel  string
	OpenAIEmbed  string

	// Какой коллаборатор считает близость: "gemini" | "gpt".
	Scorer string

	// DSN кэша извлечений; пусто — кэш выключен.
	DatabaseURL string

	TelegramBotToken string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		GeminiAPIKey: mustEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		EmbedModel:   getEnv("EMBED_MODEL", "text-embedding-004"),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIEmbed:  getEnv("OPENAI_EMBED_MODEL", "text-embedding-3-small"),

		Scorer: getEnv("SCORER", "gemini"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
	}
}
