package postgres

import (
	"database/sql"

	"drillbot/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// SeedWord inserts a word-translation pair unless the exact pair
// already exists, so re-running the seed never creates duplicates
func (r *WordRepo) SeedWord(targetWord, translateWord string) (bool, error) {
	query := `
		INSERT INTO words (target_word, translate_word)
		SELECT $1, $2
		WHERE NOT EXISTS (
			SELECT 1 FROM words
			WHERE target_word = $1 AND translate_word = $2
		)
	`
	res, err := r.db.Exec(query, targetWord, translateWord)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetRandomWord returns a uniform random word for the user.
// Words the user has hidden are excluded in the selection predicate,
// so the cost does not depend on the size of the hidden set.
func (r *WordRepo) GetRandomWord(userID int64) (*domain.Word, error) {
	var w domain.Word
	var createdBy sql.NullInt64
	query := `
		SELECT w.id, w.target_word, w.translate_word, w.created_by_user_id
		FROM words w
		WHERE NOT EXISTS (
			SELECT 1 FROM user_word_hides h
			WHERE h.user_id = $1 AND h.word_id = w.id AND h.hidden
		)
		ORDER BY RANDOM()
		LIMIT 1
	`
	err := r.db.QueryRow(query, userID).Scan(
		&w.ID, &w.TargetWord, &w.TranslateWord, &createdBy,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if createdBy.Valid {
		w.CreatedByUserID = &createdBy.Int64
	}

	return &w, nil
}

// GetDistractors returns up to limit distinct target words other than
// excludeWord, in random order. GROUP BY keeps the result free of
// duplicate strings even when several rows share a target word.
func (r *WordRepo) GetDistractors(excludeWord string, limit int) ([]string, error) {
	query := `
		SELECT target_word
		FROM words
		WHERE target_word <> $1
		GROUP BY target_word
		ORDER BY RANDOM()
		LIMIT $2
	`

	rows, err := r.db.Query(query, excludeWord, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// AddUserWord inserts a word owned by the user. Intentionally no
// deduplication: a user may re-add a variant of an existing pair.
func (r *WordRepo) AddUserWord(userID int64, targetWord, translateWord string) (*domain.Word, error) {
	var id int64
	query := `
		INSERT INTO words (target_word, translate_word, created_by_user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(query, targetWord, translateWord, userID).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &domain.Word{
		ID:              id,
		TargetWord:      targetWord,
		TranslateWord:   translateWord,
		CreatedByUserID: &userID,
	}, nil
}

// HideWord marks targetWord hidden for the user. At most one hide row
// exists per (user, word); repeated hides re-affirm the same row.
// Returns false when the word is not in the catalog.
func (r *WordRepo) HideWord(userID int64, targetWord string) (bool, error) {
	var wordID int64
	findQuery := `SELECT id FROM words WHERE target_word = $1 LIMIT 1`
	err := r.db.QueryRow(findQuery, targetWord).Scan(&wordID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	upsertQuery := `
		INSERT INTO user_word_hides (user_id, word_id, hidden)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (user_id, word_id)
		DO UPDATE SET hidden = TRUE
	`
	if _, err := r.db.Exec(upsertQuery, userID, wordID); err != nil {
		return false, err
	}

	return true, nil
}
