package models

import "time"

type NotificationChannel string

const ChannelSMS NotificationChannel = "sms"

type NotificationOutcome string

const (
	// OutcomeDelivered means the provider acknowledged the send.
	OutcomeDelivered NotificationOutcome = "delivered"
	// OutcomeBlocked means the provider rejected the send with a permanent
	// policy error (e.g. destination region not permitted). Non-fatal: the
	// alert itself is still considered successfully reported.
	OutcomeBlocked NotificationOutcome = "blocked"
	// OutcomeFailed covers every other provider or transport failure.
	OutcomeFailed NotificationOutcome = "failed"
	// OutcomePending means no attempt was made (provider not configured).
	OutcomePending NotificationOutcome = "pending"
)

// Notification is one immutable record of an attempt to reach a human about
// an alert event. An alert accumulates one record per attempt; records are
// never mutated or deleted here.
type Notification struct {
	AlertID           string              `json:"alertId"`
	Channel           NotificationChannel `json:"channel"`
	Outcome           NotificationOutcome `json:"outcome"`
	ProviderErrorCode string              `json:"providerErrorCode,omitempty"`
	AttemptedAt       time.Time           `json:"attemptedAt"`
}
