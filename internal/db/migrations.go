package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS todos (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			day          TEXT NOT NULL CHECK(day IN (
				'monday', 'tuesday', 'wednesday', 'thursday', 'friday', 'saturday', 'sunday'
			)),
			text         TEXT NOT NULL CHECK(length(trim(text)) > 0),
			completed    INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0, 1)),
			created_at   TEXT NOT NULL,
			completed_at TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_todos_day ON todos(day);
		CREATE INDEX IF NOT EXISTS idx_todos_completed ON todos(completed);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating todos table: %w", err)
	}

	return nil
}
