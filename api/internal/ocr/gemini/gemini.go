package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"paper-grader/api/internal/ocr"
	"paper-grader/api/internal/util"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Transcribe(ctx context.Context, img []byte, mime string) (string, error) {
	return e.generate(ctx, img, mime, ocr.PromptTranscribe, "")
}

func (e *Engine) ExtractAnswers(ctx context.Context, img []byte, mime string) (string, error) {
	// Для структурного извлечения просим строгий JSON
	return e.generate(ctx, img, mime, ocr.PromptExtractAnswers, "application/json")
}

func (e *Engine) generate(ctx context.Context, img []byte, mime, prompt, responseMIME string) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}
	if responseMIME != "" {
		m.GenerationConfig.ResponseMIMEType = responseMIME
	}

	finalMIME := util.PickMIME(mime, "", img)
	parts := []genai.Part{
		genai.Text(prompt),
		&genai.Blob{MIMEType: finalMIME, Data: img},
	}

	// Ретраи на случай 5xx/транзиентных сбоев
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		resp, err := m.GenerateContent(ctx, parts...)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
			continue
		}
		txt := strings.TrimSpace(firstText(resp))
		if txt == "" && responseMIME != "" {
			return "", fmt.Errorf("gemini: empty response")
		}
		return txt, nil
	}
	return "", lastErr
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok && strings.TrimSpace(string(t)) != "" {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(f float32) *float32 { return &f }
