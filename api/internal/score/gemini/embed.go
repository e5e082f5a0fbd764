package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"paper-grader/api/internal/score"
)

type Scorer struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Scorer {
	return &Scorer{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (s *Scorer) Name() string { return "gemini" }

func (s *Scorer) Similarity(ctx context.Context, student, reference string) (float64, error) {
	if s.APIKey == "" {
		return 0, errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(s.APIKey))
	if err != nil {
		return 0, err
	}
	defer cl.Close()

	em := cl.EmbeddingModel(s.Model)
	batch := em.NewBatch().
		AddContent(genai.Text(student)).
		AddContent(genai.Text(reference))
	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return 0, err
	}
	if resp == nil || len(resp.Embeddings) < 2 ||
		resp.Embeddings[0] == nil || resp.Embeddings[1] == nil {
		return 0, fmt.Errorf("gemini embed: incomplete response")
	}
	return score.Cosine(toFloat64(resp.Embeddings[0].Values), toFloat64(resp.Embeddings[1].Values)), nil
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
