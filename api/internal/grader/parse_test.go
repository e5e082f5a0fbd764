package grader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtractionPlainJSON(t *testing.T) {
	got, err := ParseExtraction(`{"answers":[{"questionNumber":"1","answerText":"Paris"}]}`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].QuestionNumber)
	assert.Equal(t, "Paris", got[0].AnswerText)
}

func TestParseExtractionFenced(t *testing.T) {
	raw := "```json\n{\"answers\":[{\"questionNumber\":\"Q1.\",\"answerText\":\"The capital of France is Paris\"},{\"questionNumber\":\"2\",\"answerText\":\"H2O\"}]}\n```"
	got, err := ParseExtraction(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Q1.", got[0].QuestionNumber)
	assert.Equal(t, "2", got[1].QuestionNumber)
}

func TestParseExtractionFenceWithoutTag(t *testing.T) {
	got, err := ParseExtraction("```\n{\"answers\":[]}\n```")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseExtractionMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"the model rambled instead of answering",
		"```json\n{\"answers\": [broken\n```",
		"{\"answers\": \"not a list\"}",
	} {
		got, err := ParseExtraction(raw)
		assert.ErrorIs(t, err, ErrUnparsable, "input %q", raw)
		assert.Nil(t, got)
	}
}

func TestParseExtractionSkipsBlankPairs(t *testing.T) {
	got, err := ParseExtraction(`{"answers":[{"questionNumber":"","answerText":""},{"questionNumber":"1","answerText":"x"}]}`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].QuestionNumber)
}
