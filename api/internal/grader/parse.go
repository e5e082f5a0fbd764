package grader

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"paper-grader/api/internal/util"
)

// ErrUnparsable — вывод извлечения не разобрался как JSON с answers[].
// Для пайплайна это не фатально: вызывающий деградирует до пустого набора ответов.
var ErrUnparsable = errors.New("extraction output is not parseable")

type extractionPayload struct {
	Answers []ExtractedAnswer `json:"answers"`
}

// ParseExtraction срезает кодовую ограду и языковую метку, остальное читает
// как строгий JSON вида {"answers":[{"questionNumber","answerText"}]}.
func ParseExtraction(raw string) ([]ExtractedAnswer, error) {
	cleaned := util.StripCodeFences(raw)
	if cleaned == "" {
		return nil, ErrUnparsable
	}
	var p extractionPayload
	if err := json.Unmarshal([]byte(cleaned), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	out := make([]ExtractedAnswer, 0, len(p.Answers))
	for _, a := range p.Answers {
		if strings.TrimSpace(a.QuestionNumber) == "" && strings.TrimSpace(a.AnswerText) == "" {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
