package handler

import (
	"drillbot/internal/service"
	"drillbot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Fixed action button labels. These are transport configuration: the
// services receive them through Actions() and never compare against
// the literals themselves.
const (
	BtnNext       = "Дальше ⏭"
	BtnAddWord    = "Добавить слово ➕"
	BtnDeleteWord = "Удалить слово🔙"
)

// Actions returns the fixed action labels in display order
func Actions() []string {
	return []string{BtnNext, BtnAddWord, BtnDeleteWord}
}

// action is the typed form of an inbound button press. Label strings
// are resolved exactly once, at the boundary.
type action int

const (
	actionAnswer action = iota
	actionNext
	actionAddWord
	actionDeleteWord
)

func resolveAction(text string) action {
	switch text {
	case BtnNext:
		return actionNext
	case BtnAddWord:
		return actionAddWord
	case BtnDeleteWord:
		return actionDeleteWord
	default:
		return actionAnswer
	}
}

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	drill    *service.DrillService
	words    *service.WordService
	sessions *session.Store
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	drill *service.DrillService,
	words *service.WordService,
	sessions *session.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		drill:    drill,
		words:    words,
		sessions: sessions,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/cards", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)

	h.bot.Handle(tele.OnText, h.handleText)
}

// replyMarkup builds a reply keyboard with two buttons per row
func replyMarkup(labels []string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}

	var rows []tele.Row
	for i := 0; i < len(labels); i += 2 {
		if i+1 < len(labels) {
			rows = append(rows, markup.Row(markup.Text(labels[i]), markup.Text(labels[i+1])))
		} else {
			rows = append(rows, markup.Row(markup.Text(labels[i])))
		}
	}
	markup.Reply(rows...)

	return markup
}
