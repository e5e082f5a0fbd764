package grader

import "math"

// Band — нижний порог и подпись. Таблица просматривается сверху вниз,
// выигрывает первый подходящий порог.
type Band struct {
	Min     float64
	Strict  bool // true: строго больше Min; false: больше либо равно
	Message string
}

type FeedbackTable []Band

func (t FeedbackTable) For(v float64) string {
	for _, b := range t {
		if b.Strict {
			if v > b.Min {
				return b.Message
			}
		} else if v >= b.Min {
			return b.Message
		}
	}
	return ""
}

// Таблицы намеренно расходятся: одиночный режим судит по сырой близости,
// батчевый — по проценту набранных баллов.
var (
	SingleFeedback = FeedbackTable{
		{Min: 0.8, Strict: true, Message: "Excellent!"},
		{Min: 0.5, Strict: true, Message: "Good attempt."},
		{Min: math.Inf(-1), Message: "Needs improvement."},
	}

	BatchFeedback = FeedbackTable{
		{Min: 80, Message: "Excellent work!"},
		{Min: 60, Message: "Good performance!"},
		{Min: 40, Message: "Satisfactory. Keep improving!"},
		{Min: math.Inf(-1), Message: "Needs significant improvement."},
	}
)
