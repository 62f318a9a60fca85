package repository

import (
	"drillbot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	// GetOrCreate resolves the internal user id for a transport id,
	// creating the row on first contact. created is true only when
	// this call inserted the row.
	GetOrCreate(externalID int64) (id int64, created bool, err error)
}

// WordRepository defines word catalog operations
type WordRepository interface {
	// SeedWord inserts a pair unless an identical pair already exists.
	// Returns true when a row was inserted.
	SeedWord(targetWord, translateWord string) (bool, error)

	// GetRandomWord draws a uniform random word, excluding words the
	// user has hidden. Returns nil when the eligible set is empty.
	GetRandomWord(userID int64) (*domain.Word, error)

	// GetDistractors returns up to limit distinct target words other
	// than excludeWord, chosen uniformly at random.
	GetDistractors(excludeWord string, limit int) ([]string, error)

	// AddUserWord inserts a word owned by the user. Never deduplicated.
	AddUserWord(userID int64, targetWord, translateWord string) (*domain.Word, error)

	// HideWord marks targetWord hidden for the user. Returns false
	// when the word does not exist in the catalog.
	HideWord(userID int64, targetWord string) (bool, error)
}
