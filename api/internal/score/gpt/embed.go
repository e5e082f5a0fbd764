package gpt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"paper-grader/api/internal/score"
)

type Scorer struct {
	APIKey string
	Model  string
	httpc  *http.Client
}

func New(key, model string) *Scorer {
	return &Scorer{
		APIKey: strings.TrimSpace(key),
		Model:  strings.TrimSpace(model),
		httpc:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *Scorer) Name() string { return "gpt" }

func (s *Scorer) Similarity(ctx context.Context, student, reference string) (float64, error) {
	if s.APIKey == "" {
		return 0, fmt.Errorf("OPENAI_API_KEY is empty")
	}
	model := s.Model
	if model == "" {
		model = "text-embedding-3-small"
	}

	body := map[string]any{
		"model": model,
		"input": []string{student, reference},
	}
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/embeddings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := s.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("openai embeddings %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var out struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	if len(out.Data) < 2 {
		return 0, fmt.Errorf("openai embeddings: incomplete response")
	}
	return score.Cosine(out.Data[0].Embedding, out.Data[1].Embedding), nil
}
