package ocr

import (
	"context"
	"errors"
)

// Engine — движок извлечения текста с фото/скана работы.
type Engine interface {
	Name() string
	GetModel() string
	// Transcribe — дословная расшифровка рукописного текста.
	Transcribe(ctx context.Context, img []byte, mime string) (string, error)
	// ExtractAnswers — сырой ответ модели на структурный промпт (JSON c answers[]).
	// Разбор ответа — на стороне вызывающего.
	ExtractAnswers(ctx context.Context, img []byte, mime string) (string, error)
}

type Engines struct {
	Gemini Engine
	OpenAI Engine
}

func (e *Engines) GetEngine(llmName string) (Engine, error) {
	switch llmName {
	case "", "gemini":
		return e.Gemini, nil
	case "gpt", "openai":
		if e.OpenAI == nil {
			return nil, errors.New("openai engine is not configured")
		}
		return e.OpenAI, nil
	default:
		return nil, errors.New("unknown llm_name; use 'gemini' or 'gpt'")
	}
}
