package domain

// Word represents a catalog entry: a target-language word and its
// translation. CreatedByUserID is nil for seed words.
type Word struct {
	ID              int64
	TargetWord      string
	TranslateWord   string
	CreatedByUserID *int64
}

// WordPair is a bare pair used for seeding and display
type WordPair struct {
	TargetWord    string
	TranslateWord string
}
