package postgres

import (
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetOrCreate returns the user id for externalID, inserting the row on
// first contact. A concurrent insert of the same externalID is
// resolved by re-reading the winning row, never surfaced as an error.
func (r *UserRepo) GetOrCreate(externalID int64) (int64, bool, error) {
	var id int64

	selectQuery := `SELECT id FROM users WHERE external_id = $1`
	err := r.db.QueryRow(selectQuery, externalID).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if err != sql.ErrNoRows {
		return 0, false, err
	}

	insertQuery := `
		INSERT INTO users (external_id)
		VALUES ($1)
		ON CONFLICT (external_id) DO NOTHING
		RETURNING id
	`
	err = r.db.QueryRow(insertQuery, externalID).Scan(&id)
	if err == sql.ErrNoRows {
		// Lost the race to a concurrent insert; the row exists now
		err = r.db.QueryRow(selectQuery, externalID).Scan(&id)
		if err != nil {
			return 0, false, err
		}
		return id, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return id, true, nil
}
