package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Trigger represents one fired zone arrival and its outcome
type Trigger struct {
	ID           int64
	Timestamp    time.Time
	Zone         string
	X            int
	Y            int
	Command      string
	DurationMs   int64
	Success      bool
	ErrorMessage string
}

// SaveTrigger saves a trigger to the database
func (db *DB) SaveTrigger(t *Trigger) error {
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now().UTC()
	}

	query := `
		INSERT INTO triggers (
			timestamp, zone, x, y, command, duration_ms, success, error_message
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	// Match the format CURRENT_TIMESTAMP produces so sqlite date functions
	// keep working on the column.
	result, err := db.conn.Exec(query,
		t.Timestamp.UTC().Format("2006-01-02 15:04:05"), t.Zone, t.X, t.Y,
		t.Command, t.DurationMs, t.Success, t.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to save trigger: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	t.ID = id
	return nil
}

// GetTriggers retrieves triggers with pagination, newest first
func (db *DB) GetTriggers(limit, offset int) ([]Trigger, error) {
	query := `
		SELECT id, timestamp, zone, x, y, command, duration_ms, success, error_message
		FROM triggers
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := db.conn.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query triggers: %w", err)
	}
	defer rows.Close()

	var triggers []Trigger
	for rows.Next() {
		var t Trigger
		var errorMessage sql.NullString

		err := rows.Scan(
			&t.ID, &t.Timestamp, &t.Zone, &t.X, &t.Y,
			&t.Command, &t.DurationMs, &t.Success, &errorMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trigger: %w", err)
		}

		if errorMessage.Valid {
			t.ErrorMessage = errorMessage.String
		}

		triggers = append(triggers, t)
	}

	return triggers, rows.Err()
}

// DeleteTrigger deletes a trigger by ID
func (db *DB) DeleteTrigger(id int64) error {
	result, err := db.conn.Exec(`DELETE FROM triggers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trigger: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("trigger not found")
	}

	return nil
}

// GetTriggerCount returns the total number of recorded triggers
func (db *DB) GetTriggerCount() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM triggers").Scan(&count)
	return count, err
}
