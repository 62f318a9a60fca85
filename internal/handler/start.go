package handler

import (
	"errors"

	"drillbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start and /cards: both open a drill round
func (h *Handler) handleStart(c tele.Context) error {
	return h.startRound(c)
}

// handleHelp handles /help
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send(helpText)
}

// startRound opens a new drill round for the sender
func (h *Handler) startRound(c tele.Context) error {
	userID := c.Sender().ID

	reply, err := h.drill.StartRound(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoWordsAvailable) {
			return c.Send(msgNoWords)
		}
		h.logger.Error("Failed to start round",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(msgTryAgain)
	}

	if reply.NewUser {
		h.logger.Info("New user registered",
			zap.Int64("user_id", userID),
			zap.String("username", c.Sender().Username),
		)
		if err := c.Send(msgGreeting); err != nil {
			return err
		}
	}

	return c.Send(reply.Text, replyMarkup(reply.Buttons))
}
