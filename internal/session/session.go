package session

import "sync"

// Phase is the user's current conversational state. It governs which
// fields of State are valid and what the next text message means.
type Phase string

const (
	PhaseIdle                Phase = "idle"
	PhaseAwaitingAnswer      Phase = "awaiting_answer"
	PhaseAwaitingWord        Phase = "awaiting_word"
	PhaseAwaitingTranslation Phase = "awaiting_translation"
)

// State holds the ephemeral per-user data of the current drill round
// or contribution flow. It lives only for the process lifetime.
type State struct {
	Phase Phase

	// Valid while Phase == PhaseAwaitingAnswer
	TargetWord    string
	TranslateWord string
	Buttons       []string

	// Valid while Phase == PhaseAwaitingTranslation
	DraftWord string
}

// Store keeps one State per user. Mutations for the same user are
// serialized; different users never contend.
type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry
}

type entry struct {
	mu    sync.Mutex
	state State
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{entries: make(map[int64]*entry)}
}

func (s *Store) entryFor(userID int64) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		e = &entry{state: State{Phase: PhaseIdle}}
		s.entries[userID] = e
	}
	return e
}

// Get returns a copy of the user's current state, creating an idle
// record if the user has none. The Buttons slice is copied so the
// caller cannot alias the stored state.
func (s *Store) Get(userID int64) State {
	e := s.entryFor(userID)

	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.state
	if st.Buttons != nil {
		st.Buttons = append([]string(nil), st.Buttons...)
	}
	return st
}

// Mutate runs fn against the user's state as an atomic
// read-modify-write. Two messages from the same user cannot
// interleave their mutations.
func (s *Store) Mutate(userID int64, fn func(*State)) {
	e := s.entryFor(userID)

	e.mu.Lock()
	defer e.mu.Unlock()

	fn(&e.state)
}
