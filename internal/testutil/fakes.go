package testutil

import (
	"math/rand"
	"sync"

	"drillbot/internal/domain"
)

// FakeUserRepo is an in-memory UserRepository for end-to-end tests
type FakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	ids    map[int64]int64
}

// NewFakeUserRepo creates an empty fake user repository
func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{ids: make(map[int64]int64)}
}

func (r *FakeUserRepo) GetOrCreate(externalID int64) (int64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.ids[externalID]; ok {
		return id, false, nil
	}
	r.nextID++
	r.ids[externalID] = r.nextID
	return r.nextID, true, nil
}

// FakeWordRepo is an in-memory WordRepository with real seed-dedup and
// hide-exclusion semantics, for tests that exercise whole flows
type FakeWordRepo struct {
	mu     sync.Mutex
	nextID int64
	words  []domain.Word
	hides  map[int64]map[int64]bool
}

// NewFakeWordRepo creates an empty fake word repository
func NewFakeWordRepo() *FakeWordRepo {
	return &FakeWordRepo{hides: make(map[int64]map[int64]bool)}
}

// Count returns the number of catalog rows
func (r *FakeWordRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.words)
}

// Words returns a copy of the catalog
func (r *FakeWordRepo) Words() []domain.Word {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Word(nil), r.words...)
}

func (r *FakeWordRepo) SeedWord(targetWord, translateWord string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, w := range r.words {
		if w.TargetWord == targetWord && w.TranslateWord == translateWord {
			return false, nil
		}
	}
	r.nextID++
	r.words = append(r.words, domain.Word{
		ID:            r.nextID,
		TargetWord:    targetWord,
		TranslateWord: translateWord,
	})
	return true, nil
}

func (r *FakeWordRepo) GetRandomWord(userID int64) (*domain.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var eligible []domain.Word
	for _, w := range r.words {
		if !r.hides[userID][w.ID] {
			eligible = append(eligible, w)
		}
	}
	if len(eligible) == 0 {
		return nil, nil
	}
	w := eligible[rand.Intn(len(eligible))]
	return &w, nil
}

func (r *FakeWordRepo) GetDistractors(excludeWord string, limit int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool)
	var candidates []string
	for _, w := range r.words {
		if w.TargetWord == excludeWord || seen[w.TargetWord] {
			continue
		}
		seen[w.TargetWord] = true
		candidates = append(candidates, w.TargetWord)
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

func (r *FakeWordRepo) AddUserWord(userID int64, targetWord, translateWord string) (*domain.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	owner := userID
	w := domain.Word{
		ID:              r.nextID,
		TargetWord:      targetWord,
		TranslateWord:   translateWord,
		CreatedByUserID: &owner,
	}
	r.words = append(r.words, w)
	return &w, nil
}

func (r *FakeWordRepo) HideWord(userID int64, targetWord string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, w := range r.words {
		if w.TargetWord == targetWord {
			if r.hides[userID] == nil {
				r.hides[userID] = make(map[int64]bool)
			}
			r.hides[userID][w.ID] = true
			return true, nil
		}
	}
	return false, nil
}
