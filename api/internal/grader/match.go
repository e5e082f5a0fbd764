package grader

import "strings"

// NormalizeQuestionNumber приводит номер вопроса к каноническому виду:
// срезает ведущую букву Q/q, убирает точки, обрезает пробелы.
// "Q1." и " q1 " и "1" равны.
func NormalizeQuestionNumber(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 0 && (s[0] == 'Q' || s[0] == 'q') {
		s = s[1:]
	}
	s = strings.ReplaceAll(s, ".", "")
	return strings.TrimSpace(s)
}

// MatchAnswer возвращает первого кандидата с тем же нормализованным номером.
// Повторные совпадения игнорируются; «не найдено» — валидный исход, не ошибка.
func MatchAnswer(key AnswerKeyEntry, candidates []ExtractedAnswer) (ExtractedAnswer, bool) {
	want := NormalizeQuestionNumber(key.QuestionNumber)
	for _, c := range candidates {
		if NormalizeQuestionNumber(c.QuestionNumber) == want {
			return c, true
		}
	}
	return ExtractedAnswer{}, false
}
