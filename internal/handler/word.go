package handler

import (
	"errors"
	"strings"

	"drillbot/internal/domain"
	"drillbot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages: action buttons first, then
// dispatch by the sender's session phase
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := c.Text()

	// Commands are handled by their own handlers
	if strings.HasPrefix(text, "/") {
		return nil
	}

	switch resolveAction(text) {
	case actionNext:
		return h.startRound(c)
	case actionAddWord:
		reply := h.words.BeginAdd(userID)
		return c.Send(reply.Text)
	case actionDeleteWord:
		return h.deleteWord(c)
	}

	switch h.sessions.Get(userID).Phase {
	case session.PhaseAwaitingWord:
		reply := h.words.CaptureWord(userID, text)
		return c.Send(reply.Text)

	case session.PhaseAwaitingTranslation:
		reply, err := h.words.CaptureTranslation(userID, text)
		if err != nil {
			h.logger.Error("Failed to save word pair",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
			return c.Send(msgSaveFailed)
		}
		h.logger.Info("Word pair saved", zap.Int64("user_id", userID))
		return c.Send(reply.Text)

	default:
		return h.submitAnswer(c, text)
	}
}

// submitAnswer evaluates the text as a drill answer
func (h *Handler) submitAnswer(c tele.Context, text string) error {
	userID := c.Sender().ID

	reply, err := h.drill.SubmitAnswer(userID, text)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveRound) {
			return c.Send(msgNoRound)
		}
		h.logger.Error("Failed to evaluate answer",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(msgTryAgain)
	}

	return c.Send(reply.Text, replyMarkup(reply.Buttons))
}

// deleteWord hides the currently drilled word for the sender
func (h *Handler) deleteWord(c tele.Context) error {
	userID := c.Sender().ID

	reply, err := h.words.HideCurrent(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveWord) {
			return c.Send(msgNoActiveWord)
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Send(msgWordNotFound)
		}
		h.logger.Error("Failed to hide word",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(msgTryAgain)
	}

	h.logger.Info("Word hidden", zap.Int64("user_id", userID))
	return c.Send(reply.Text)
}
