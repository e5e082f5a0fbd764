package grader

const (
	StatusSuccess = "success"
	StatusError   = "error"

	// NotFoundMarker подставляется в поле ответа ученика, когда вопрос не найден на листе.
	NotFoundMarker = "NOT FOUND"
)

// Submission — одна загруженная работа ученика.
type Submission struct {
	ID          string
	StudentName string
	Data        []byte
}

// AnswerKeyEntry — эталонный ответ и балл за один вопрос.
type AnswerKeyEntry struct {
	QuestionNumber  string  `json:"questionNumber"`
	ReferenceAnswer string  `json:"referenceAnswer"`
	MaxMarks        float64 `json:"maxMarks"`
}

// ExtractedAnswer — пара «номер вопроса / ответ», как её вернуло извлечение.
// Порядок следования — порядок на листе, семантики не несёт.
type ExtractedAnswer struct {
	QuestionNumber string `json:"questionNumber"`
	AnswerText     string `json:"answerText"`
}

type QuestionResult struct {
	QuestionNumber  string  `json:"questionNumber"`
	MarksObtained   float64 `json:"marksObtained"`
	MaxMarks        float64 `json:"maxMarks"`
	Similarity      float64 `json:"similarity"`
	StudentAnswer   string  `json:"studentAnswer"`
	ReferenceAnswer string  `json:"referenceAnswer"`
	Found           bool    `json:"found"`
}

type SubmissionResult struct {
	SubmissionID    string           `json:"submissionId"`
	StudentName     string           `json:"studentName"`
	Status          string           `json:"status"`
	TotalMarks      float64          `json:"totalMarks"`
	TotalMaxMarks   float64          `json:"totalMaxMarks"`
	Percentage      float64          `json:"percentage"`
	OverallFeedback string           `json:"overallFeedback,omitempty"`
	QuestionResults []QuestionResult `json:"questionResults,omitempty"`
	ErrorMessage    string           `json:"errorMessage,omitempty"`
}

// SingleResult — результат одиночной проверки (без разбиения по вопросам).
type SingleResult struct {
	ExtractedText string
	Marks         float64
	MaxMarks      float64
	Similarity    float64
	Feedback      string
}
