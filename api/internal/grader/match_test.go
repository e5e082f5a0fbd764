package grader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuestionNumber(t *testing.T) {
	cases := map[string]string{
		"1":      "1",
		"Q1":     "1",
		"q1":     "1",
		"Q1.":    "1",
		" 1. ":   "1",
		"  q12 ": "12",
		"1.2":    "12", // точки убираются все
		"":       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeQuestionNumber(in), "input %q", in)
	}
}

func TestMatchAnswerEquivalentIdentifiers(t *testing.T) {
	key := AnswerKeyEntry{QuestionNumber: "1", ReferenceAnswer: "ref", MaxMarks: 5}
	for _, variant := range []string{"1", "Q1", "q1", "Q1.", " 1 ", "1."} {
		got, ok := MatchAnswer(key, []ExtractedAnswer{{QuestionNumber: variant, AnswerText: "a"}})
		assert.True(t, ok, "variant %q", variant)
		assert.Equal(t, "a", got.AnswerText)
	}
}

func TestMatchAnswerFirstWins(t *testing.T) {
	key := AnswerKeyEntry{QuestionNumber: "2"}
	got, ok := MatchAnswer(key, []ExtractedAnswer{
		{QuestionNumber: "1", AnswerText: "one"},
		{QuestionNumber: "Q2", AnswerText: "first"},
		{QuestionNumber: "2.", AnswerText: "second"},
	})
	assert.True(t, ok)
	assert.Equal(t, "first", got.AnswerText)
}

func TestMatchAnswerNotFound(t *testing.T) {
	key := AnswerKeyEntry{QuestionNumber: "3"}
	_, ok := MatchAnswer(key, []ExtractedAnswer{{QuestionNumber: "1"}, {QuestionNumber: "2"}})
	assert.False(t, ok)

	_, ok = MatchAnswer(key, nil)
	assert.False(t, ok)
}
