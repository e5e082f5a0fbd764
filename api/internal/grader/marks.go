package grader

import "math"

// ScoreMarks переводит близость в балл: округление до одного знака,
// сверху потолок вопроса, снизу ноль (близость не обязана лежать в [-1,1]).
// Потолок применяется первым: ноль — последнее слово.
func ScoreMarks(similarity, maxMarks float64) float64 {
	marks := math.Round(similarity*maxMarks*10) / 10
	if marks > maxMarks {
		marks = maxMarks
	}
	if marks < 0 {
		marks = 0
	}
	return marks
}
