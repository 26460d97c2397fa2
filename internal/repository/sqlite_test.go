package repository

import (
	"context"
	"testing"
	"time"

	"github.com/yatriai/sos-alerts/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteDB {
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteDB_AddAndList(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	n := &models.Notification{
		AlertID:     "sos_1",
		Channel:     models.ChannelSMS,
		Outcome:     models.OutcomeDelivered,
		AttemptedAt: time.Now().UTC(),
	}
	if err := db.Add(ctx, n); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := db.ListByAlert(ctx, "sos_1")
	if err != nil {
		t.Fatalf("ListByAlert failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	if got[0].Outcome != models.OutcomeDelivered {
		t.Errorf("expected outcome delivered, got %s", got[0].Outcome)
	}
	if got[0].ProviderErrorCode != "" {
		t.Errorf("expected empty provider code, got %q", got[0].ProviderErrorCode)
	}
}

func TestSQLiteDB_AttemptOrderPreserved(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	outcomes := []models.NotificationOutcome{
		models.OutcomePending,
		models.OutcomeFailed,
		models.OutcomeBlocked,
		models.OutcomeDelivered,
	}
	at := time.Now().UTC()
	for _, o := range outcomes {
		err := db.Add(ctx, &models.Notification{
			AlertID:     "sos_1",
			Channel:     models.ChannelSMS,
			Outcome:     o,
			AttemptedAt: at,
		})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	got, err := db.ListByAlert(ctx, "sos_1")
	if err != nil {
		t.Fatalf("ListByAlert failed: %v", err)
	}
	if len(got) != len(outcomes) {
		t.Fatalf("expected %d notifications, got %d", len(outcomes), len(got))
	}
	for i, o := range outcomes {
		if got[i].Outcome != o {
			t.Errorf("position %d: got %s, want %s", i, got[i].Outcome, o)
		}
	}
}

func TestSQLiteDB_ListByAlertIsolation(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, alertID := range []string{"sos_a", "sos_a", "sos_b"} {
		err := db.Add(ctx, &models.Notification{
			AlertID:           alertID,
			Channel:           models.ChannelSMS,
			Outcome:           models.OutcomeFailed,
			ProviderErrorCode: "30007",
			AttemptedAt:       time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	a, err := db.ListByAlert(ctx, "sos_a")
	if err != nil {
		t.Fatalf("ListByAlert failed: %v", err)
	}
	if len(a) != 2 {
		t.Errorf("expected 2 notifications for sos_a, got %d", len(a))
	}

	missing, err := db.ListByAlert(ctx, "sos_missing")
	if err != nil {
		t.Fatalf("ListByAlert failed: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("expected no notifications for unknown alert, got %d", len(missing))
	}
}
