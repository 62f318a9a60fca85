package domain

import "errors"

var (
	// ErrNoWordsAvailable means the user's eligible word set is empty
	ErrNoWordsAvailable = errors.New("no words available")

	// ErrNotFound means a requested user/word relationship does not exist
	ErrNotFound = errors.New("not found")

	// ErrNoActiveRound means the user answered without a running round
	ErrNoActiveRound = errors.New("no active round")

	// ErrNoActiveWord means there is no drilled word to act on
	ErrNoActiveWord = errors.New("no active word")
)
