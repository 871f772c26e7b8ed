package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the kiosk's sqlite file and bootstraps the survey schema.
// Chat and cart state are deliberately not persisted; the survey datastore is
// the only table.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS survey_responses(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  q1_list     TEXT NOT NULL,
  q2_offers   TEXT NOT NULL,
  q3_scan     TEXT NOT NULL,
  q4_kids     TEXT NOT NULL,
  q5_feedback TEXT,
  created_at  TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_survey_created_at ON survey_responses(created_at);
`
	_, err := db.Exec(schema)
	return err
}
