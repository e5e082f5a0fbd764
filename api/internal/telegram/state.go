package telegram

import "sync"

const defaultMaxMarks = 5

var chatState sync.Map // chatID -> *gradeState

// gradeState защищён мьютексом: апдейты одного чата идут в разных горутинах,
// /key может гоняться с загрузкой фото.
type gradeState struct {
	mu        sync.Mutex
	reference string
	maxMarks  float64
}

func stateFor(chatID int64) *gradeState {
	if v, ok := chatState.Load(chatID); ok {
		return v.(*gradeState)
	}
	st := &gradeState{maxMarks: defaultMaxMarks}
	actual, _ := chatState.LoadOrStore(chatID, st)
	return actual.(*gradeState)
}

// snapshot — согласованная пара (эталон, максимум) на момент вызова.
func snapshot(chatID int64) (reference string, maxMarks float64) {
	st := stateFor(chatID)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.reference, st.maxMarks
}

func setReference(chatID int64, ref string) {
	st := stateFor(chatID)
	st.mu.Lock()
	st.reference = ref
	st.mu.Unlock()
}

func setMaxMarks(chatID int64, mm float64) {
	st := stateFor(chatID)
	st.mu.Lock()
	st.maxMarks = mm
	st.mu.Unlock()
}
