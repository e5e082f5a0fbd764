package handle

import (
	"encoding/json"
	"net/http"

	"paper-grader/api/internal/grader"
)

type Handle struct {
	grader *grader.Grader
}

func New(g *grader.Grader) *Handle {
	return &Handle{grader: g}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail — ошибка в формате {"detail": "..."}, который ждёт фронтенд.
func writeDetail(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"detail": msg})
}

// allowCORS: фронтенд живёт на другом origin. Возвращает true, если это preflight.
func allowCORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return true
	}
	return false
}
