package service

import (
	"fmt"
	"math/rand"
	"strings"

	"drillbot/internal/domain"
	"drillbot/internal/repository"
	"drillbot/internal/session"
)

const (
	distractorCount = 3

	// Suffix appended to a button after a wrong guess. Appended at
	// most once per button; a marked button never matches again.
	wrongMark = "❌"
)

// DrillService runs drill rounds: it picks a word, assembles the
// option buttons, and evaluates answers against the session state.
type DrillService struct {
	users    repository.UserRepository
	words    repository.WordRepository
	sessions *session.Store
	actions  []string
}

// NewDrillService creates a drill service. actions are the fixed
// action button labels appended after the answer options; they belong
// to the transport and are injected here rather than hardcoded.
func NewDrillService(
	users repository.UserRepository,
	words repository.WordRepository,
	sessions *session.Store,
	actions []string,
) *DrillService {
	return &DrillService{
		users:    users,
		words:    words,
		sessions: sessions,
		actions:  actions,
	}
}

// StartRound draws a word and up to 3 distractors, shuffles the
// options, and overwrites the user's session with the new round.
// Returns domain.ErrNoWordsAvailable when the user has hidden the
// entire catalog.
func (s *DrillService) StartRound(externalID int64) (Reply, error) {
	userID, created, err := s.users.GetOrCreate(externalID)
	if err != nil {
		return Reply{}, fmt.Errorf("get or create user: %w", err)
	}

	word, err := s.words.GetRandomWord(userID)
	if err != nil {
		return Reply{}, fmt.Errorf("draw word: %w", err)
	}
	if word == nil {
		return Reply{NewUser: created}, domain.ErrNoWordsAvailable
	}

	distractors, err := s.words.GetDistractors(word.TargetWord, distractorCount)
	if err != nil {
		return Reply{}, fmt.Errorf("draw distractors: %w", err)
	}

	options := append([]string{word.TargetWord}, distractors...)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	buttons := append(options, s.actions...)

	// A new round fully overwrites the session, which also discards
	// an abandoned add-word draft
	s.sessions.Mutate(externalID, func(st *session.State) {
		*st = session.State{
			Phase:         session.PhaseAwaitingAnswer,
			TargetWord:    word.TargetWord,
			TranslateWord: word.TranslateWord,
			Buttons:       append([]string(nil), buttons...),
		}
	})

	return Reply{
		Outcome: OutcomePrompt,
		Text:    fmt.Sprintf("Выбери перевод слова:\n🇷🇺 %s", word.TranslateWord),
		Buttons: buttons,
		NewUser: created,
	}, nil
}

// SubmitAnswer evaluates an utterance against the current round.
// A correct answer collapses the buttons to the action row but keeps
// the drilled word, so a follow-up hide still applies to it. A wrong
// button is annotated with the error mark exactly once; free text
// outside the button set mutates nothing.
func (s *DrillService) SubmitAnswer(externalID int64, text string) (Reply, error) {
	var reply Reply
	var stateErr error

	s.sessions.Mutate(externalID, func(st *session.State) {
		if st.Phase != session.PhaseAwaitingAnswer || st.TargetWord == "" {
			stateErr = domain.ErrNoActiveRound
			return
		}

		if text == st.TargetWord {
			st.Buttons = append([]string(nil), s.actions...)
			reply = Reply{
				Outcome: OutcomeCorrect,
				Text:    fmt.Sprintf("Отлично!❤\n%s -> %s", st.TargetWord, st.TranslateWord),
				Buttons: append([]string(nil), st.Buttons...),
			}
			return
		}

		for i, btn := range st.Buttons {
			if btn == text && !strings.HasSuffix(btn, wrongMark) {
				st.Buttons[i] = btn + wrongMark
				break
			}
		}

		reply = Reply{
			Outcome: OutcomeIncorrect,
			Text:    fmt.Sprintf("Допущена ошибка!\nПопробуй ещё раз вспомнить слово 🇷🇺%s", st.TranslateWord),
			Buttons: append([]string(nil), st.Buttons...),
		}
	})

	return reply, stateErr
}
