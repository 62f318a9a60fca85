package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetDefault(t *testing.T) {
	store := NewStore()

	state := store.Get(123)

	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Empty(t, state.TargetWord)
	assert.Empty(t, state.Buttons)
}

func TestStore_Mutate(t *testing.T) {
	store := NewStore()

	store.Mutate(123, func(s *State) {
		s.Phase = PhaseAwaitingAnswer
		s.TargetWord = "cat"
		s.TranslateWord = "кот"
		s.Buttons = []string{"cat", "dog"}
	})

	state := store.Get(123)
	assert.Equal(t, PhaseAwaitingAnswer, state.Phase)
	assert.Equal(t, "cat", state.TargetWord)
	assert.Equal(t, "кот", state.TranslateWord)
	assert.Equal(t, []string{"cat", "dog"}, state.Buttons)
}

func TestStore_UsersAreIndependent(t *testing.T) {
	store := NewStore()

	store.Mutate(1, func(s *State) {
		s.Phase = PhaseAwaitingWord
	})

	assert.Equal(t, PhaseAwaitingWord, store.Get(1).Phase)
	assert.Equal(t, PhaseIdle, store.Get(2).Phase)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore()

	store.Mutate(1, func(s *State) {
		s.Buttons = []string{"a", "b"}
	})

	state := store.Get(1)
	state.Buttons[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, store.Get(1).Buttons)
}

func TestStore_MutateIsSerializedPerUser(t *testing.T) {
	store := NewStore()
	const goroutines = 50
	const increments = 20

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				store.Mutate(1, func(s *State) {
					s.Buttons = append(s.Buttons, "x")
				})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, store.Get(1).Buttons, goroutines*increments)
}
