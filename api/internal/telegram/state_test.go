package telegram

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateDefaults(t *testing.T) {
	ref, mm := snapshot(100)
	assert.Empty(t, ref)
	assert.Equal(t, 5.0, mm)
}

func TestStateSetAndSnapshot(t *testing.T) {
	setReference(200, "эталонный ответ")
	setMaxMarks(200, 10)

	ref, mm := snapshot(200)
	assert.Equal(t, "эталонный ответ", ref)
	assert.Equal(t, 10.0, mm)
}

func TestStateConcurrentAccess(t *testing.T) {
	// /key и загрузка фото приходят параллельно; под -race не должно быть гонки
	const chat = int64(300)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			setReference(chat, "ref")
			setMaxMarks(chat, 7)
		}()
		go func() {
			defer wg.Done()
			snapshot(chat)
		}()
	}
	wg.Wait()

	ref, mm := snapshot(chat)
	assert.Equal(t, "ref", ref)
	assert.Equal(t, 7.0, mm)
}
