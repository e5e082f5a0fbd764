package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"paper-grader/api/internal/grader"
)

var httpc = &http.Client{Timeout: 60 * time.Second}

func (r *Router) acceptWork(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	reference, maxMarks := snapshot(cid)
	if reference == "" {
		r.send(cid, "Сначала задай эталон: /key <ответ>")
		return
	}

	fileID := ""
	if len(msg.Photo) > 0 {
		fileID = msg.Photo[len(msg.Photo)-1].FileID
	} else if msg.Document != nil {
		fileID = msg.Document.FileID
	}
	if fileID == "" {
		return
	}

	r.send(cid, "Принял, проверяю…")

	tf, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		r.sendError(cid, err)
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, tf.FilePath)
	data, err := download(url)
	if err != nil {
		r.sendError(cid, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()

	res, err := r.Grader.GradeSingle(ctx, data, reference, maxMarks)
	if errors.Is(err, grader.ErrNoTextExtracted) {
		r.send(cid, "Не смог прочитать текст с фото. Попробуй переснять.")
		return
	}
	if err != nil {
		r.sendError(cid, err)
		return
	}

	r.send(cid, fmt.Sprintf(
		"📝 Распознано:\n%s\n\nБалл: %g из %g (близость %.3f)\n%s",
		res.ExtractedText, res.Marks, res.MaxMarks, res.Similarity, res.Feedback,
	))
}

func download(url string) ([]byte, error) {
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}
