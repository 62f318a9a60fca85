package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"drillbot/internal/domain"
)

// entry mirrors one object of the word list file
type entry struct {
	Russian string `json:"russian"`
	English string `json:"english"`
}

// LoadFile reads the seed word list: a JSON array of
// {"russian": ..., "english": ...} objects
func LoadFile(path string) ([]domain.WordPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return Parse(data)
}

// Parse decodes a word list from raw JSON
func Parse(data []byte) ([]domain.WordPair, error) {
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse word list: %w", err)
	}

	pairs := make([]domain.WordPair, 0, len(entries))
	for _, e := range entries {
		pairs = append(pairs, domain.WordPair{
			TargetWord:    e.English,
			TranslateWord: e.Russian,
		})
	}
	return pairs, nil
}
