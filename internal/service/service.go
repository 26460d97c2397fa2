// Package service orchestrates the alert lifecycle: validate, classify,
// register, route contacts, and hand the event to the notification side
// without ever waiting on it.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yatriai/sos-alerts/internal/classify"
	"github.com/yatriai/sos-alerts/internal/contacts"
	"github.com/yatriai/sos-alerts/internal/events"
	"github.com/yatriai/sos-alerts/internal/models"
	"github.com/yatriai/sos-alerts/internal/registry"
	"github.com/yatriai/sos-alerts/internal/repository"
)

var ErrValidation = errors.New("validation error")

// Notifier schedules out-of-band notification attempts. Dispatch must return
// without waiting on the provider.
type Notifier interface {
	Dispatch(e events.Event) bool
	SendTest(ctx context.Context) bool
}

type Service struct {
	registry      *registry.Registry
	notifier      Notifier
	broadcaster   *events.Broadcaster
	notifications repository.NotificationRepository
}

func New(reg *registry.Registry, notifier Notifier, broadcaster *events.Broadcaster, notifications repository.NotificationRepository) *Service {
	return &Service{
		registry:      reg,
		notifier:      notifier,
		broadcaster:   broadcaster,
		notifications: notifications,
	}
}

type ReportRequest struct {
	ReporterID   string
	ReporterName string
	Category     models.AlertCategory
	Location     models.Location
	Message      string
}

type ReportResult struct {
	Alert                  models.Alert
	Contacts               []models.EmergencyContact
	GuidanceTips           []string
	NotificationDispatched bool
}

// ReportAlert runs the fast path synchronously (validate, classify, register,
// route) and schedules the notification attempt without awaiting it. Only the
// synchronous steps can fail the request.
func (s *Service) ReportAlert(req ReportRequest) (*ReportResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	severity, minutes := classify.Classify(req.Category, req.Message)

	alert := models.Alert{
		ID:                       newAlertID(),
		ReporterID:               req.ReporterID,
		Category:                 req.Category,
		Severity:                 severity,
		Location:                 req.Location,
		Message:                  req.Message,
		Status:                   models.StatusActive,
		CreatedAt:                time.Now().UTC(),
		EstimatedResponseMinutes: minutes,
		Responders:               []models.ResponderAck{},
	}

	if err := s.registry.Create(&alert); err != nil {
		return nil, err
	}

	e := events.Event{
		Kind:         events.KindCreated,
		Alert:        alert,
		ReporterName: req.ReporterName,
		NewStatus:    models.StatusActive,
		At:           alert.CreatedAt,
	}
	dispatched := s.notifier.Dispatch(e)
	s.broadcaster.Broadcast(e)

	slog.Info("alert created",
		"id", alert.ID,
		"reporter_id", alert.ReporterID,
		"category", alert.Category,
		"severity", alert.Severity,
	)

	return &ReportResult{
		Alert:                  alert,
		Contacts:               contacts.RouteContacts(req.Category),
		GuidanceTips:           tipsFor(req.Category),
		NotificationDispatched: dispatched,
	}, nil
}

func (req ReportRequest) validate() error {
	switch {
	case req.ReporterID == "":
		return fmt.Errorf("%w: missing reporterId", ErrValidation)
	case req.Category == "":
		return fmt.Errorf("%w: missing category", ErrValidation)
	case req.Location.IsZero():
		return fmt.Errorf("%w: missing location", ErrValidation)
	case req.Message == "":
		return fmt.Errorf("%w: missing message", ErrValidation)
	}
	return nil
}

// ChangeStatus moves an alert through its lifecycle and schedules a
// status-change notification. Registry errors pass through unchanged.
func (s *Service) ChangeStatus(alertID string, next models.AlertStatus, actor string) (models.Alert, bool, error) {
	updated, prev, err := s.registry.UpdateStatus(alertID, next, actor)
	if err != nil {
		return models.Alert{}, false, err
	}

	e := events.Event{
		Kind:      events.KindStatusChanged,
		Alert:     updated,
		Actor:     actor,
		OldStatus: prev,
		NewStatus: next,
		At:        time.Now().UTC(),
	}
	dispatched := s.notifier.Dispatch(e)
	s.broadcaster.Broadcast(e)

	slog.Info("alert status changed", "id", alertID, "from", prev, "to", next, "actor", actor)

	return updated, dispatched, nil
}

func (s *Service) ListAlertsFor(reporterID string) []models.Alert {
	return s.registry.ListByReporter(reporterID)
}

// ListNotifications returns the append-only notification log for an alert.
func (s *Service) ListNotifications(ctx context.Context, alertID string) ([]models.Notification, error) {
	if _, err := s.registry.Get(alertID); err != nil {
		return nil, err
	}
	return s.notifications.ListByAlert(ctx, alertID)
}

// TestNotification triggers one synchronous provider attempt with a synthetic
// payload, for configuration diagnostics.
func (s *Service) TestNotification(ctx context.Context) bool {
	return s.notifier.SendTest(ctx)
}

func newAlertID() string {
	return "sos_" + uuid.NewString()
}
