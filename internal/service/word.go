package service

import (
	"fmt"
	"strings"

	"drillbot/internal/domain"
	"drillbot/internal/repository"
	"drillbot/internal/session"
)

// WordService handles the word catalog and the contribution flows:
// seeding, the two-step add-word machine, and hiding the drilled word.
type WordService struct {
	users    repository.UserRepository
	words    repository.WordRepository
	sessions *session.Store
}

// NewWordService creates a new word service
func NewWordService(
	users repository.UserRepository,
	words repository.WordRepository,
	sessions *session.Store,
) *WordService {
	return &WordService{
		users:    users,
		words:    words,
		sessions: sessions,
	}
}

// SeedCatalog inserts the pairs that are not yet in the catalog,
// trimming surrounding whitespace before matching. Safe to call on
// every startup; returns the number of rows actually inserted.
func (s *WordService) SeedCatalog(pairs []domain.WordPair) (int, error) {
	inserted := 0
	for _, p := range pairs {
		target := strings.TrimSpace(p.TargetWord)
		translate := strings.TrimSpace(p.TranslateWord)

		ok, err := s.words.SeedWord(target, translate)
		if err != nil {
			return inserted, fmt.Errorf("seed %q: %w", target, err)
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

// BeginAdd starts the add-word flow, discarding whatever the session
// held before
func (s *WordService) BeginAdd(externalID int64) Reply {
	s.sessions.Mutate(externalID, func(st *session.State) {
		*st = session.State{Phase: session.PhaseAwaitingWord}
	})

	return Reply{Outcome: OutcomePrompt, Text: "Введите слово на английском:"}
}

// CaptureWord stores the message verbatim as the draft target word and
// advances to the translation step
func (s *WordService) CaptureWord(externalID int64, text string) Reply {
	s.sessions.Mutate(externalID, func(st *session.State) {
		st.Phase = session.PhaseAwaitingTranslation
		st.DraftWord = text
	})

	return Reply{Outcome: OutcomePrompt, Text: "Теперь введите перевод:"}
}

// CaptureTranslation persists the draft pair owned by the user and
// resets the session to idle. On a storage failure the session keeps
// waiting for the translation, so the user can simply retry.
func (s *WordService) CaptureTranslation(externalID int64, text string) (Reply, error) {
	var draft string
	s.sessions.Mutate(externalID, func(st *session.State) {
		draft = st.DraftWord
	})

	userID, _, err := s.users.GetOrCreate(externalID)
	if err != nil {
		return Reply{}, fmt.Errorf("get or create user: %w", err)
	}

	if _, err := s.words.AddUserWord(userID, draft, text); err != nil {
		return Reply{}, fmt.Errorf("save word: %w", err)
	}

	s.sessions.Mutate(externalID, func(st *session.State) {
		*st = session.State{Phase: session.PhaseIdle}
	})

	return Reply{
		Outcome: OutcomeAdded,
		Text:    fmt.Sprintf("Слово '%s' добавлено!", draft),
	}, nil
}

// HideCurrent hides the currently drilled word from the user's future
// draws. Returns domain.ErrNoActiveWord when no word has been drilled
// and domain.ErrNotFound when the store does not know the word.
func (s *WordService) HideCurrent(externalID int64) (Reply, error) {
	target := s.sessions.Get(externalID).TargetWord
	if target == "" {
		return Reply{}, domain.ErrNoActiveWord
	}

	userID, _, err := s.users.GetOrCreate(externalID)
	if err != nil {
		return Reply{}, fmt.Errorf("get or create user: %w", err)
	}

	ok, err := s.words.HideWord(userID, target)
	if err != nil {
		return Reply{}, fmt.Errorf("hide word: %w", err)
	}
	if !ok {
		return Reply{}, domain.ErrNotFound
	}

	return Reply{
		Outcome: OutcomeHidden,
		Text:    fmt.Sprintf("Слово '%s' удалено!", target),
	}, nil
}
