package testutil

import (
	"drillbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a seed test word
func NewTestWord(id int64, target, translate string) *domain.Word {
	return &domain.Word{
		ID:            id,
		TargetWord:    target,
		TranslateWord: translate,
	}
}

// NewTestUserWord creates a test word owned by a user
func NewTestUserWord(id, ownerID int64, target, translate string) *domain.Word {
	return &domain.Word{
		ID:              id,
		TargetWord:      target,
		TranslateWord:   translate,
		CreatedByUserID: &ownerID,
	}
}
