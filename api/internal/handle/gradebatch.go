package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"paper-grader/api/internal/grader"
	"paper-grader/api/internal/util"
)

type batchSubmission struct {
	ID          string `json:"id"`
	StudentName string `json:"studentName"`
	FileData    string `json:"fileData"` // base64, допускается data:URL
}

type batchRequest struct {
	LLMName     string                  `json:"llm_name"`
	Submissions []batchSubmission       `json:"submissions"`
	AnswerKeys  []grader.AnswerKeyEntry `json:"answerKeys"`
}

type batchResponse struct {
	Status  string                    `json:"status"`
	Results []grader.SubmissionResult `json:"results"`
}

// GradeBatch — батчевая проверка по ключу ответов.
func (h *Handle) GradeBatch(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}

	subs := make([]grader.Submission, 0, len(req.Submissions))
	for _, s := range req.Submissions {
		id := s.ID
		if id == "" {
			id = "sub-" + uuid.NewString()
		}
		// Битый base64 не валит запрос: работа пройдёт по пайплайну
		// и получит свой status=error
		data, _, err := util.DecodeBase64MaybeDataURL(s.FileData)
		if err != nil {
			data = nil
		}
		subs = append(subs, grader.Submission{
			ID:          id,
			StudentName: s.StudentName,
			Data:        data,
		})
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Minute)
	defer cancel()

	results, err := h.grader.GradeBatch(ctx, req.LLMName, subs, req.AnswerKeys)
	if err != nil {
		// Сюда попадают только нарушения формы запроса, до начала обработки
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, batchResponse{Status: "success", Results: results})
}
