package service

import (
	"fmt"
	"testing"

	"drillbot/internal/domain"
	"drillbot/internal/session"
	"drillbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

var testActions = []string{"next", "add", "delete"}

func countOf(items []string, target string) int {
	n := 0
	for _, item := range items {
		if item == target {
			n++
		}
	}
	return n
}

func newDrillFixture() (*DrillService, *testutil.MockUserRepository, *testutil.MockWordRepository, *session.Store) {
	mockUsers := new(testutil.MockUserRepository)
	mockWords := new(testutil.MockWordRepository)
	sessions := session.NewStore()
	svc := NewDrillService(mockUsers, mockWords, sessions, testActions)
	return svc, mockUsers, mockWords, sessions
}

func TestDrillService_StartRound(t *testing.T) {
	svc, mockUsers, mockWords, sessions := newDrillFixture()

	mockUsers.On("GetOrCreate", int64(10)).Return(int64(1), false, nil)
	mockWords.On("GetRandomWord", int64(1)).Return(testutil.NewTestWord(1, "cat", "кот"), nil)
	mockWords.On("GetDistractors", "cat", 3).Return([]string{"dog", "sun", "moon"}, nil)

	reply, err := svc.StartRound(10)

	assert.NoError(t, err)
	assert.Equal(t, OutcomePrompt, reply.Outcome)
	assert.Contains(t, reply.Text, "кот")
	assert.False(t, reply.NewUser)

	// 4 shuffled options followed by the fixed action labels
	assert.Len(t, reply.Buttons, 7)
	assert.Equal(t, 1, countOf(reply.Buttons, "cat"))
	assert.Equal(t, testActions, reply.Buttons[4:])

	state := sessions.Get(10)
	assert.Equal(t, session.PhaseAwaitingAnswer, state.Phase)
	assert.Equal(t, "cat", state.TargetWord)
	assert.Equal(t, "кот", state.TranslateWord)
	assert.Equal(t, reply.Buttons, state.Buttons)

	mockUsers.AssertExpectations(t)
	mockWords.AssertExpectations(t)
}

func TestDrillService_StartRound_NewUser(t *testing.T) {
	svc, mockUsers, mockWords, _ := newDrillFixture()

	mockUsers.On("GetOrCreate", int64(10)).Return(int64(1), true, nil)
	mockWords.On("GetRandomWord", int64(1)).Return(testutil.NewTestWord(1, "cat", "кот"), nil)
	mockWords.On("GetDistractors", "cat", 3).Return([]string{"dog"}, nil)

	reply, err := svc.StartRound(10)

	assert.NoError(t, err)
	assert.True(t, reply.NewUser)
	assert.Len(t, reply.Buttons, 5)
}

func TestDrillService_StartRound_DiscardsDraft(t *testing.T) {
	svc, mockUsers, mockWords, sessions := newDrillFixture()

	sessions.Mutate(10, func(st *session.State) {
		st.Phase = session.PhaseAwaitingTranslation
		st.DraftWord = "abandoned"
	})

	mockUsers.On("GetOrCreate", int64(10)).Return(int64(1), false, nil)
	mockWords.On("GetRandomWord", int64(1)).Return(testutil.NewTestWord(1, "cat", "кот"), nil)
	mockWords.On("GetDistractors", "cat", 3).Return([]string{"dog"}, nil)

	_, err := svc.StartRound(10)

	assert.NoError(t, err)
	state := sessions.Get(10)
	assert.Equal(t, session.PhaseAwaitingAnswer, state.Phase)
	assert.Empty(t, state.DraftWord)
}

func TestDrillService_StartRound_NoWordsAvailable(t *testing.T) {
	svc, mockUsers, mockWords, _ := newDrillFixture()

	mockUsers.On("GetOrCreate", int64(10)).Return(int64(1), false, nil)
	mockWords.On("GetRandomWord", int64(1)).Return(nil, nil)

	_, err := svc.StartRound(10)

	assert.ErrorIs(t, err, domain.ErrNoWordsAvailable)
}

func TestDrillService_StartRound_StorageError(t *testing.T) {
	svc, mockUsers, mockWords, _ := newDrillFixture()

	mockUsers.On("GetOrCreate", int64(10)).Return(int64(1), false, nil)
	mockWords.On("GetRandomWord", int64(1)).Return(nil, fmt.Errorf("db error"))

	_, err := svc.StartRound(10)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoWordsAvailable)
}

func TestDrillService_SubmitAnswer_NoActiveRound(t *testing.T) {
	svc, _, _, _ := newDrillFixture()

	_, err := svc.SubmitAnswer(10, "cat")

	assert.ErrorIs(t, err, domain.ErrNoActiveRound)
}

func startedRound(t *testing.T) (*DrillService, *session.Store) {
	t.Helper()

	svc, mockUsers, mockWords, sessions := newDrillFixture()
	mockUsers.On("GetOrCreate", int64(10)).Return(int64(1), false, nil)
	mockWords.On("GetRandomWord", int64(1)).Return(testutil.NewTestWord(1, "cat", "кот"), nil)
	mockWords.On("GetDistractors", "cat", 3).Return([]string{"dog", "sun", "moon"}, nil)

	_, err := svc.StartRound(10)
	assert.NoError(t, err)

	return svc, sessions
}

func TestDrillService_SubmitAnswer_Correct(t *testing.T) {
	svc, sessions := startedRound(t)

	reply, err := svc.SubmitAnswer(10, "cat")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeCorrect, reply.Outcome)
	assert.Contains(t, reply.Text, "cat -> кот")
	assert.Equal(t, testActions, reply.Buttons)

	// The drilled word survives a correct answer so it can still be hidden
	state := sessions.Get(10)
	assert.Equal(t, "cat", state.TargetWord)
	assert.Equal(t, testActions, state.Buttons)
}

func TestDrillService_SubmitAnswer_WrongButtonMarkedOnce(t *testing.T) {
	svc, sessions := startedRound(t)

	reply, err := svc.SubmitAnswer(10, "dog")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeIncorrect, reply.Outcome)
	assert.Contains(t, reply.Text, "кот")
	assert.Equal(t, 1, countOf(reply.Buttons, "dog❌"))
	assert.Equal(t, 0, countOf(reply.Buttons, "dog"))
	assert.Len(t, reply.Buttons, 7)

	// Target is untouched by a wrong guess
	assert.Equal(t, "cat", sessions.Get(10).TargetWord)
}

func TestDrillService_SubmitAnswer_WrongButtonIdempotent(t *testing.T) {
	svc, _ := startedRound(t)

	first, err := svc.SubmitAnswer(10, "dog")
	assert.NoError(t, err)

	// Same wrong label again: already marked, nothing changes
	second, err := svc.SubmitAnswer(10, "dog")
	assert.NoError(t, err)
	assert.Equal(t, first.Buttons, second.Buttons)

	// Pressing the marked button sends its annotated label
	third, err := svc.SubmitAnswer(10, "dog❌")
	assert.NoError(t, err)
	assert.Equal(t, first.Buttons, third.Buttons)
	assert.Equal(t, 1, countOf(third.Buttons, "dog❌"))
}

func TestDrillService_SubmitAnswer_FreeText(t *testing.T) {
	svc, sessions := startedRound(t)

	before := sessions.Get(10)

	reply, err := svc.SubmitAnswer(10, "something else entirely")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeIncorrect, reply.Outcome)

	after := sessions.Get(10)
	assert.Equal(t, before.Buttons, after.Buttons)
	assert.Equal(t, before.TargetWord, after.TargetWord)
}

func TestDrillService_SubmitAnswer_CorrectAfterWrongGuesses(t *testing.T) {
	svc, _ := startedRound(t)

	_, err := svc.SubmitAnswer(10, "dog")
	assert.NoError(t, err)
	_, err = svc.SubmitAnswer(10, "sun")
	assert.NoError(t, err)

	reply, err := svc.SubmitAnswer(10, "cat")

	assert.NoError(t, err)
	assert.Equal(t, OutcomeCorrect, reply.Outcome)
	assert.Equal(t, testActions, reply.Buttons)
}
