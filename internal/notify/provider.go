package notify

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/yatriai/sos-alerts/internal/models"
)

// Provider is the outbound send-message primitive. Implementations return the
// provider's message id on success, a *ProviderError for structured provider
// rejections, or any other error for transport-level failures.
type Provider interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// ProviderError is a structured rejection from the messaging provider.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

// blockedCodes are permanent policy rejections: the provider refuses this
// destination outright (region not permitted, recipient opted out). These are
// non-fatal to the alert.
var blockedCodes = map[int]bool{
	21408: true, // destination region not enabled
	21610: true, // recipient has opted out
}

func classifyOutcome(err error) (models.NotificationOutcome, string) {
	if err == nil {
		return models.OutcomeDelivered, ""
	}

	var perr *ProviderError
	if errors.As(err, &perr) {
		code := strconv.Itoa(perr.Code)
		if blockedCodes[perr.Code] {
			return models.OutcomeBlocked, code
		}
		return models.OutcomeFailed, code
	}

	return models.OutcomeFailed, "transport_error"
}

// Status reports whether the provider is usable, with no secrets included.
type Status struct {
	Configured     bool   `json:"configured"`
	HasCredentials bool   `json:"hasCredentials"`
	HasTarget      bool   `json:"hasTarget"`
	TargetNumber   string `json:"targetNumber"`
}

// MaskPhone hides all but the last four digits of a phone number.
func MaskPhone(phone string) string {
	if phone == "" {
		return "not configured"
	}
	if len(phone) <= 4 {
		return "****"
	}
	return "****" + phone[len(phone)-4:]
}
