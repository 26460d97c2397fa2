package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/yatriai/sos-alerts/internal/models"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS notifications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			alert_id TEXT NOT NULL,
			channel TEXT NOT NULL,
			outcome TEXT NOT NULL,
			provider_error_code TEXT NOT NULL DEFAULT '',
			attempted_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_notifications_alert_id ON notifications(alert_id);
  	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Add(ctx context.Context, n *models.Notification) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notifications (alert_id, channel, outcome, provider_error_code, attempted_at)
		VALUES (?, ?, ?, ?, ?)`,
		n.AlertID, string(n.Channel), string(n.Outcome), n.ProviderErrorCode, n.AttemptedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting notification: %w", err)
	}
	return nil
}

func (s *SQLiteDB) ListByAlert(ctx context.Context, alertID string) ([]models.Notification, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT alert_id, channel, outcome, provider_error_code, attempted_at
		FROM notifications
		WHERE alert_id = ?
		ORDER BY id ASC`,
		alertID,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying notifications: %w", err)
	}
	defer rows.Close()

	var out []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.AlertID, &n.Channel, &n.Outcome, &n.ProviderErrorCode, &n.AttemptedAt); err != nil {
			return nil, fmt.Errorf("error scanning notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
