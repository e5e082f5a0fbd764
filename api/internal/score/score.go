package score

import (
	"context"
	"math"
)

// Scorer — внешний вычислитель семантической близости двух текстов.
// Возвращает косинусную близость в [-1, 1].
type Scorer interface {
	Name() string
	Similarity(ctx context.Context, student, reference string) (float64, error)
}

func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
