package grader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreMarks(t *testing.T) {
	assert.Equal(t, 9.0, ScoreMarks(0.9, 10))
	assert.Equal(t, 4.5, ScoreMarks(0.9, 5))
	assert.Equal(t, 8.6, ScoreMarks(0.856, 10))
	assert.Equal(t, 0.0, ScoreMarks(0, 10))
	assert.Equal(t, 0.0, ScoreMarks(0.9, 0))
}

func TestScoreMarksClampsNegative(t *testing.T) {
	assert.Equal(t, 0.0, ScoreMarks(-0.4, 10))
	assert.Equal(t, 0.0, ScoreMarks(-1, 5))
}

func TestScoreMarksNegativeCeiling(t *testing.T) {
	// Отрицательный потолок не утягивает балл ниже нуля: ноль — последнее слово
	assert.Equal(t, 0.0, ScoreMarks(0.5, -10))
	assert.Equal(t, 0.0, ScoreMarks(-0.5, -10))
	assert.Equal(t, 0.0, ScoreMarks(1, -3))
}

func TestScoreMarksClampsAboveCeiling(t *testing.T) {
	// Близость вне [-1,1] не должна давать балл выше потолка
	assert.Equal(t, 10.0, ScoreMarks(1.2, 10))
	assert.Equal(t, 5.0, ScoreMarks(1.000001, 5))
}

func TestScoreMarksStaysInRange(t *testing.T) {
	for _, sim := range []float64{-1, -0.5, 0, 0.123, 0.5, 0.77, 0.999, 1} {
		for _, max := range []float64{0, 1, 3, 5, 10, 100} {
			m := ScoreMarks(sim, max)
			assert.GreaterOrEqual(t, m, 0.0, "sim=%v max=%v", sim, max)
			assert.LessOrEqual(t, m, max, "sim=%v max=%v", sim, max)
		}
	}
}
