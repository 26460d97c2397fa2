// Package notify delivers out-of-band alert notifications. Dispatch is
// fire-and-forget: the caller that created or updated an alert never waits on
// the provider, and every failure is absorbed here and recorded as data.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/yatriai/sos-alerts/internal/events"
	"github.com/yatriai/sos-alerts/internal/models"
	"github.com/yatriai/sos-alerts/internal/repository"
	"github.com/yatriai/sos-alerts/internal/worker"
)

type Options struct {
	// Workers and BufferSize bound the dispatch queue.
	Workers    int
	BufferSize int
	// AttemptTimeout caps one provider call; there is no automatic retry.
	AttemptTimeout time.Duration
	// To is the designated responder's number. Empty means unconfigured.
	To string
}

type Dispatcher struct {
	provider Provider
	repo     repository.NotificationRepository
	pool     *worker.Pool[events.Event]
	opts     Options
}

// NewDispatcher builds a dispatcher. A nil provider or empty target number
// leaves it unconfigured: events are still consumed and recorded (outcome
// pending) so the audit log shows what was never attempted.
func NewDispatcher(provider Provider, repo repository.NotificationRepository, opts Options) *Dispatcher {
	d := &Dispatcher{
		provider: provider,
		repo:     repo,
		opts:     opts,
	}
	d.pool = worker.NewPool(opts.Workers, opts.BufferSize, d.process)
	return d
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.pool.Start(ctx)
}

// Stop drains queued dispatches and waits for in-flight attempts.
func (d *Dispatcher) Stop() {
	d.pool.Stop()
}

func (d *Dispatcher) configured() bool {
	return d.provider != nil && d.opts.To != ""
}

// Dispatch schedules one notification attempt for an alert event and returns
// immediately. It reports whether the attempt was scheduled; a saturated
// queue drops the event and records it as a failed attempt, because alert
// handling must never block on the notification side-channel.
func (d *Dispatcher) Dispatch(e events.Event) bool {
	if d.pool.TryEnqueue(e) {
		return true
	}

	slog.Error("notification queue full, dropping dispatch", "alert_id", e.Alert.ID, "kind", e.Kind)
	d.record(e.Alert.ID, models.OutcomeFailed, "queue_full")
	return false
}

func (d *Dispatcher) process(ctx context.Context, e events.Event) {
	if !d.configured() {
		slog.Warn("sms provider not configured, skipping send", "alert_id", e.Alert.ID, "kind", e.Kind)
		d.record(e.Alert.ID, models.OutcomePending, "not_configured")
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.opts.AttemptTimeout)
	defer cancel()

	sid, err := d.provider.Send(sendCtx, d.opts.To, smsBody(e))
	outcome, code := classifyOutcome(err)

	switch outcome {
	case models.OutcomeDelivered:
		slog.Info("sms delivered", "alert_id", e.Alert.ID, "kind", e.Kind, "sid", sid)
	case models.OutcomeBlocked:
		slog.Warn("sms blocked by provider policy", "alert_id", e.Alert.ID, "code", code)
	default:
		slog.Error("sms send failed", "alert_id", e.Alert.ID, "code", code, "error", err)
	}

	d.record(e.Alert.ID, outcome, code)
}

// record appends one immutable notification row. It uses its own context so
// the audit write survives an expired send deadline.
func (d *Dispatcher) record(alertID string, outcome models.NotificationOutcome, code string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n := &models.Notification{
		AlertID:           alertID,
		Channel:           models.ChannelSMS,
		Outcome:           outcome,
		ProviderErrorCode: code,
		AttemptedAt:       time.Now().UTC(),
	}
	if err := d.repo.Add(ctx, n); err != nil {
		slog.Error("failed to record notification outcome", "alert_id", alertID, "error", err)
	}
}

// SendTest performs one synchronous attempt with a synthetic payload, used
// for provider configuration diagnostics. A blocked outcome still counts as a
// working configuration.
func (d *Dispatcher) SendTest(ctx context.Context) bool {
	if !d.configured() {
		return false
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.opts.AttemptTimeout)
	defer cancel()

	_, err := d.provider.Send(sendCtx, d.opts.To, testSMSBody(time.Now()))
	outcome, code := classifyOutcome(err)
	if outcome == models.OutcomeFailed {
		slog.Error("test sms failed", "code", code, "error", err)
		return false
	}
	return true
}
