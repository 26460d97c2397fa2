package classify

import (
	"testing"

	"github.com/yatriai/sos-alerts/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		category    models.AlertCategory
		message     string
		wantSev     models.Severity
		wantMinutes int
	}{
		{"medical base", models.CategoryMedical, "sprained ankle near the museum", models.SeverityHigh, 10},
		{"medical critical keyword", models.CategoryMedical, "someone is unconscious and not breathing", models.SeverityCritical, 5},
		{"medical keyword case-insensitive", models.CategoryMedical, "BLEEDING badly", models.SeverityCritical, 5},
		{"security base", models.CategorySecurity, "feeling unsafe in this area", models.SeverityMedium, 15},
		{"security escalates to high", models.CategorySecurity, "my bag was taken in a robbery", models.SeverityHigh, 10},
		{"transport base", models.CategoryTransport, "bus broke down, no other issue", models.SeverityLow, 15},
		{"transport escalates to high not critical", models.CategoryTransport, "vehicle breakdown on the highway", models.SeverityHigh, 10},
		{"weather base", models.CategoryWeather, "heavy rain", models.SeverityMedium, 15},
		{"weather escalates", models.CategoryWeather, "flood water rising fast", models.SeverityHigh, 10},
		{"general", models.CategoryGeneral, "lost my way", models.SeverityLow, 15},
		{"unknown category falls back to general", models.AlertCategory("wildlife"), "monkey stole my phone", models.SeverityLow, 15},
		{"empty message", models.CategoryMedical, "", models.SeverityHigh, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev, minutes := Classify(tt.category, tt.message)
			if sev != tt.wantSev {
				t.Errorf("severity: got %s, want %s", sev, tt.wantSev)
			}
			if minutes != tt.wantMinutes {
				t.Errorf("minutes: got %d, want %d", minutes, tt.wantMinutes)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		sev, minutes := Classify(models.CategorySecurity, "witnessed an assault")
		if sev != models.SeverityHigh || minutes != 10 {
			t.Fatalf("iteration %d: got (%s, %d), want (high, 10)", i, sev, minutes)
		}
	}
}

func TestClassify_KeywordEscalatesAboveBase(t *testing.T) {
	// Every keyword must produce a severity strictly more severe than the
	// category's base severity.
	cases := map[models.AlertCategory][]string{
		models.CategoryMedical:   {"heart", "breathing", "unconscious", "bleeding"},
		models.CategorySecurity:  {"robbery", "assault", "harassment", "theft"},
		models.CategoryTransport: {"accident", "stranded", "breakdown"},
		models.CategoryWeather:   {"flood", "storm", "cyclone"},
	}

	for category, keywords := range cases {
		base, _ := Classify(category, "nothing matching here")
		for _, kw := range keywords {
			sev, _ := Classify(category, "report mentions "+kw+" explicitly")
			if sev.Rank() <= base.Rank() {
				t.Errorf("%s/%q: severity %s not above base %s", category, kw, sev, base)
			}
		}
	}
}

func TestResponseMinutes_PureFunctionOfSeverity(t *testing.T) {
	want := map[models.Severity]int{
		models.SeverityCritical: 5,
		models.SeverityHigh:     10,
		models.SeverityMedium:   15,
		models.SeverityLow:      15,
	}
	for sev, minutes := range want {
		if got := ResponseMinutes(sev); got != minutes {
			t.Errorf("ResponseMinutes(%s): got %d, want %d", sev, got, minutes)
		}
	}
}
