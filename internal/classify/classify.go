// Package classify derives a severity tier and response-time estimate from a
// reported alert. It is pure: no I/O, no state, deterministic for any input.
package classify

import (
	"strings"

	"github.com/yatriai/sos-alerts/internal/models"
)

type rule struct {
	base models.Severity
	// criticalKeywords escalate the base severity when the message contains
	// any of them (case-insensitive substring match).
	criticalKeywords []string
}

var rules = map[models.AlertCategory]rule{
	models.CategoryMedical: {
		base:             models.SeverityHigh,
		criticalKeywords: []string{"heart", "breathing", "unconscious", "bleeding"},
	},
	models.CategorySecurity: {
		base:             models.SeverityMedium,
		criticalKeywords: []string{"robbery", "assault", "harassment", "theft"},
	},
	models.CategoryTransport: {
		base:             models.SeverityLow,
		criticalKeywords: []string{"accident", "stranded", "breakdown"},
	},
	models.CategoryWeather: {
		base:             models.SeverityMedium,
		criticalKeywords: []string{"flood", "storm", "cyclone"},
	},
	models.CategoryGeneral: {
		base: models.SeverityLow,
	},
}

// Classify maps (category, message) to a severity and an estimated response
// time in minutes. Unknown categories use the general rule set rather than
// failing; classification never errors. Only medical escalates to critical,
// every other category escalates to high.
func Classify(category models.AlertCategory, message string) (models.Severity, int) {
	r, ok := rules[category]
	if !ok {
		r = rules[models.CategoryGeneral]
	}

	severity := r.base
	lower := strings.ToLower(message)
	for _, kw := range r.criticalKeywords {
		if strings.Contains(lower, kw) {
			if category == models.CategoryMedical {
				severity = models.SeverityCritical
			} else {
				severity = models.SeverityHigh
			}
			break
		}
	}

	return severity, ResponseMinutes(severity)
}

// ResponseMinutes is the advertised response-time SLA for a severity tier.
func ResponseMinutes(s models.Severity) int {
	switch s {
	case models.SeverityCritical:
		return 5
	case models.SeverityHigh:
		return 10
	default:
		return 15
	}
}
