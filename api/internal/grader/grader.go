package grader

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"paper-grader/api/internal/ocr"
	"paper-grader/api/internal/score"
	"paper-grader/api/internal/util"
)

const snippetLen = 200

var (
	ErrNoSubmissions = errors.New("submissions list is empty")
	ErrNoAnswerKeys  = errors.New("answer keys list is empty")

	// ErrNoTextExtracted — движок не прочитал с листа ни одного символа.
	// В одиночном режиме это мягкая ошибка, не серверная.
	ErrNoTextExtracted = errors.New("no text extracted from the document")
)

// ExtractionCache — необязательный кэш сырого вывода извлечения по хэшу изображения.
type ExtractionCache interface {
	FindByHash(ctx context.Context, imageHash, engine, model, kind string, maxAge time.Duration) (string, error)
	Upsert(ctx context.Context, imageHash, engine, model, kind, raw string) error
}

// Grader держит долгоживущие ручки коллабораторов; создаётся один раз на процесс
// и передаётся явно — никакого ленивого глобального состояния.
type Grader struct {
	Engines *ocr.Engines
	Scorer  score.Scorer

	Cache    ExtractionCache // nil — кэш выключен
	CacheTTL time.Duration

	SingleTable FeedbackTable
	BatchTable  FeedbackTable
}

func New(engines *ocr.Engines, scorer score.Scorer) *Grader {
	return &Grader{
		Engines:     engines,
		Scorer:      scorer,
		CacheTTL:    24 * time.Hour,
		SingleTable: SingleFeedback,
		BatchTable:  BatchFeedback,
	}
}

// GradeBatch прогоняет каждую работу через полный пайплайн последовательно,
// в порядке входа. Сбой одной работы не прерывает батч: её результат
// помечается status=error, остальные считаются как обычно.
func (g *Grader) GradeBatch(ctx context.Context, llmName string, subs []Submission, keys []AnswerKeyEntry) ([]SubmissionResult, error) {
	if len(subs) == 0 {
		return nil, ErrNoSubmissions
	}
	if len(keys) == 0 {
		return nil, ErrNoAnswerKeys
	}
	engine, err := g.Engines.GetEngine(llmName)
	if err != nil {
		return nil, err
	}

	var totalMax float64
	for _, k := range keys {
		if strings.TrimSpace(k.QuestionNumber) == "" {
			return nil, errors.New("answer key has empty questionNumber")
		}
		if k.MaxMarks < 0 {
			return nil, fmt.Errorf("answer key %s: maxMarks must be >= 0", k.QuestionNumber)
		}
		totalMax += k.MaxMarks
	}

	results := make([]SubmissionResult, 0, len(subs))
	for _, sub := range subs {
		res := g.gradeSubmission(ctx, engine, sub, keys, totalMax)
		if res.Status == StatusError {
			log.Printf("batch: submission %s failed: %s", sub.ID, res.ErrorMessage)
		}
		results = append(results, res)
	}
	return results, nil
}

func (g *Grader) gradeSubmission(ctx context.Context, engine ocr.Engine, sub Submission, keys []AnswerKeyEntry, totalMax float64) SubmissionResult {
	res := SubmissionResult{
		SubmissionID:  sub.ID,
		StudentName:   sub.StudentName,
		TotalMaxMarks: totalMax,
	}

	if len(sub.Data) == 0 {
		return failSubmission(res, errors.New("submission has no file data"))
	}
	doc, err := DecodeDocument(sub.Data)
	if err != nil {
		return failSubmission(res, err)
	}

	raw, err := g.extract(ctx, engine, doc, "answers", engine.ExtractAnswers)
	if err != nil {
		return failSubmission(res, fmt.Errorf("extraction: %w", err))
	}

	answers, perr := ParseExtraction(raw)
	if perr != nil {
		// Шумный вывод модели не валит работу: считаем, что ответов нет
		log.Printf("submission %s: %v", sub.ID, perr)
		answers = nil
	}

	for _, key := range keys {
		qr := QuestionResult{
			QuestionNumber:  key.QuestionNumber,
			MaxMarks:        key.MaxMarks,
			ReferenceAnswer: util.Truncate(key.ReferenceAnswer, snippetLen),
			StudentAnswer:   NotFoundMarker,
		}
		if cand, ok := MatchAnswer(key, answers); ok {
			sim, err := g.Scorer.Similarity(ctx, cand.AnswerText, key.ReferenceAnswer)
			if err != nil {
				return failSubmission(res, fmt.Errorf("scoring question %s: %w", key.QuestionNumber, err))
			}
			qr.Found = true
			qr.Similarity = sim
			qr.MarksObtained = ScoreMarks(sim, key.MaxMarks)
			qr.StudentAnswer = util.Truncate(cand.AnswerText, snippetLen)
		}
		res.QuestionResults = append(res.QuestionResults, qr)
		res.TotalMarks += qr.MarksObtained
	}

	if totalMax > 0 {
		res.Percentage = round2(res.TotalMarks / totalMax * 100)
	}
	res.OverallFeedback = g.BatchTable.For(res.Percentage)
	res.Status = StatusSuccess
	return res
}

// GradeSingle — сокращённый вариант пайплайна: одна работа, один эталон,
// без сопоставления по вопросам. Судит по сырой близости.
func (g *Grader) GradeSingle(ctx context.Context, data []byte, referenceAnswer string, maxMarks float64) (SingleResult, error) {
	doc, err := DecodeDocument(data)
	if err != nil {
		return SingleResult{}, err
	}

	engine, err := g.Engines.GetEngine("")
	if err != nil {
		return SingleResult{}, err
	}
	text, err := g.extract(ctx, engine, doc, "transcribe", engine.Transcribe)
	if err != nil {
		return SingleResult{}, fmt.Errorf("extraction: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return SingleResult{}, ErrNoTextExtracted
	}

	sim, err := g.Scorer.Similarity(ctx, text, referenceAnswer)
	if err != nil {
		return SingleResult{}, fmt.Errorf("scoring: %w", err)
	}

	return SingleResult{
		ExtractedText: text,
		Marks:         ScoreMarks(sim, maxMarks),
		MaxMarks:      maxMarks,
		Similarity:    sim,
		Feedback:      g.SingleTable.For(sim),
	}, nil
}

// extract спрашивает кэш по хэшу изображения, на промахе зовёт движок и кладёт ответ в кэш.
func (g *Grader) extract(ctx context.Context, engine ocr.Engine, doc Document, kind string, call func(context.Context, []byte, string) (string, error)) (string, error) {
	var hash string
	if g.Cache != nil {
		hash = util.SHA256Hex(doc.Image)
		if raw, err := g.Cache.FindByHash(ctx, hash, engine.Name(), engine.GetModel(), kind, g.CacheTTL); err == nil {
			return raw, nil
		}
	}
	raw, err := call(ctx, doc.Image, doc.MIME)
	if err != nil {
		return "", err
	}
	if g.Cache != nil {
		if err := g.Cache.Upsert(ctx, hash, engine.Name(), engine.GetModel(), kind, raw); err != nil {
			log.Printf("extraction cache upsert: %v", err)
		}
	}
	return raw, nil
}

// failSubmission переводит результат в ошибочный: частичные начисления сбрасываются,
// потолок батча остаётся (он не зависит от исхода работы).
func failSubmission(res SubmissionResult, err error) SubmissionResult {
	res.Status = StatusError
	res.ErrorMessage = err.Error()
	res.QuestionResults = nil
	res.TotalMarks = 0
	res.Percentage = 0
	res.OverallFeedback = ""
	return res
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
