package repository

import (
	"context"

	"github.com/yatriai/sos-alerts/internal/models"
)

// NotificationRepository is the append-only log of notification attempts.
// Records are never updated or deleted by the core; retention is an external
// concern.
type NotificationRepository interface {
	Add(ctx context.Context, n *models.Notification) error
	ListByAlert(ctx context.Context, alertID string) ([]models.Notification, error)
}
