package grader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchFeedbackThresholds(t *testing.T) {
	assert.Equal(t, "Excellent work!", BatchFeedback.For(95))
	assert.Equal(t, "Excellent work!", BatchFeedback.For(80))
	assert.Equal(t, "Good performance!", BatchFeedback.For(72))
	assert.Equal(t, "Good performance!", BatchFeedback.For(60))
	assert.Equal(t, "Satisfactory. Keep improving!", BatchFeedback.For(40))
	assert.Equal(t, "Needs significant improvement.", BatchFeedback.For(39.9))
	assert.Equal(t, "Needs significant improvement.", BatchFeedback.For(0))
}

func TestSingleFeedbackThresholds(t *testing.T) {
	// Границы одиночного режима строгие — 0.8 ровно ещё не "Excellent!"
	assert.Equal(t, "Excellent!", SingleFeedback.For(0.81))
	assert.Equal(t, "Good attempt.", SingleFeedback.For(0.8))
	assert.Equal(t, "Good attempt.", SingleFeedback.For(0.51))
	assert.Equal(t, "Needs improvement.", SingleFeedback.For(0.5))
	assert.Equal(t, "Needs improvement.", SingleFeedback.For(-1))
}
