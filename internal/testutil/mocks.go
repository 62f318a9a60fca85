package testutil

import (
	"drillbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetOrCreate(externalID int64) (int64, bool, error) {
	args := m.Called(externalID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) SeedWord(targetWord, translateWord string) (bool, error) {
	args := m.Called(targetWord, translateWord)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) GetRandomWord(userID int64) (*domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetDistractors(excludeWord string, limit int) ([]string, error) {
	args := m.Called(excludeWord, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWordRepository) AddUserWord(userID int64, targetWord, translateWord string) (*domain.Word, error) {
	args := m.Called(userID, targetWord, translateWord)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) HideWord(userID int64, targetWord string) (bool, error) {
	args := m.Called(userID, targetWord)
	return args.Bool(0), args.Error(1)
}
