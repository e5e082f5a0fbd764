package handle

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"paper-grader/api/internal/grader"
)

const defaultMaxMarks = 5

type gradePayload struct {
	Marks      float64 `json:"marks"`
	MaxMarks   float64 `json:"max_marks"`
	Similarity float64 `json:"similarity"`
}

type gradeResponse struct {
	Status        string       `json:"status"`
	ExtractedText string       `json:"extracted_text"`
	Grade         gradePayload `json:"grade"`
	Feedback      string       `json:"feedback"`
}

// Grade — одиночная проверка: multipart-форма file + reference_answer + max_marks.
func (h *Handle) Grade(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeDetail(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "read file: "+err.Error())
		return
	}

	reference := strings.TrimSpace(r.FormValue("reference_answer"))
	if reference == "" {
		writeDetail(w, http.StatusBadRequest, "missing reference_answer")
		return
	}

	maxMarks := float64(defaultMaxMarks)
	if v := strings.TrimSpace(r.FormValue("max_marks")); v != "" {
		mm, err := strconv.ParseFloat(v, 64)
		if err != nil || mm < 0 {
			writeDetail(w, http.StatusBadRequest, "bad max_marks")
			return
		}
		maxMarks = mm
	}

	ctx, cancel := context.WithTimeout(r.Context(), 180*time.Second)
	defer cancel()

	res, err := h.grader.GradeSingle(ctx, data, reference, maxMarks)
	if errors.Is(err, grader.ErrNoTextExtracted) {
		// Мягкая ошибка, без серверного статуса
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "error",
			"message": "Could not read any text from the image.",
		})
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, gradeResponse{
		Status:        "success",
		ExtractedText: res.ExtractedText,
		Grade: gradePayload{
			Marks:      res.Marks,
			MaxMarks:   res.MaxMarks,
			Similarity: res.Similarity,
		},
		Feedback: res.Feedback,
	})
}
