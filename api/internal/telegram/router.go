package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"paper-grader/api/internal/grader"
)

type Router struct {
	Bot    *tgbotapi.BotAPI
	Grader *grader.Grader
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	if upd.Message.IsCommand() {
		r.handleCommand(*upd.Message)
		return
	}
	if len(upd.Message.Photo) > 0 || upd.Message.Document != nil {
		r.acceptWork(*upd.Message)
		return
	}
	r.send(upd.Message.Chat.ID, "Пришли фото работы. Сначала задай эталон: /key <ответ>")
}

func (r *Router) handleCommand(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	switch msg.Command() {
	case "start":
		r.send(cid, "Проверка письменных работ.\n"+
			"/key <эталонный ответ> — задать эталон\n"+
			"/max <балл> — максимум баллов (по умолчанию 5)\n"+
			"Затем пришли фото или PDF работы.")
	case "health":
		r.send(cid, "✅ OK")
	case "key":
		ref := strings.TrimSpace(msg.CommandArguments())
		if ref == "" {
			r.send(cid, "Использование: /key <эталонный ответ>")
			return
		}
		setReference(cid, ref)
		r.send(cid, "Эталон сохранён. Пришли фото работы.")
	case "max":
		arg := strings.TrimSpace(msg.CommandArguments())
		mm, err := strconv.ParseFloat(arg, 64)
		if err != nil || mm < 0 {
			r.send(cid, "Использование: /max <неотрицательное число>")
			return
		}
		setMaxMarks(cid, mm)
		r.send(cid, fmt.Sprintf("Максимум баллов: %g", mm))
	default:
		r.send(cid, "Неизвестная команда")
	}
}

func (r *Router) send(chatID int64, text string) {
	_, _ = r.Bot.Send(tgbotapi.NewMessage(chatID, text))
}

func (r *Router) sendError(chatID int64, err error) {
	r.send(chatID, "⚠️ "+err.Error())
}
