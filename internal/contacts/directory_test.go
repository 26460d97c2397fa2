package contacts

import (
	"testing"

	"github.com/yatriai/sos-alerts/internal/models"
)

func contactTypes(contacts []models.EmergencyContact) []models.ContactType {
	types := make([]models.ContactType, 0, len(contacts))
	for _, c := range contacts {
		types = append(types, c.Type)
	}
	return types
}

func TestRouteContacts(t *testing.T) {
	tests := []struct {
		category  models.AlertCategory
		wantTypes []models.ContactType
	}{
		{models.CategoryMedical, []models.ContactType{models.ContactPolice, models.ContactMedical}},
		{models.CategorySecurity, []models.ContactType{models.ContactPolice}},
		{models.CategoryTransport, []models.ContactType{models.ContactTouristHelpline}},
		{models.CategoryWeather, []models.ContactType{models.ContactPolice, models.ContactTouristHelpline}},
		{models.CategoryGeneral, []models.ContactType{models.ContactPolice, models.ContactTouristHelpline}},
		{models.AlertCategory("unknown"), []models.ContactType{models.ContactPolice, models.ContactTouristHelpline}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := contactTypes(RouteContacts(tt.category))
			if len(got) != len(tt.wantTypes) {
				t.Fatalf("got %d contacts (%v), want %d", len(got), got, len(tt.wantTypes))
			}
			// Returned contacts follow directory insertion order, so the
			// expected types are listed in that order too.
			for i, want := range tt.wantTypes {
				if got[i] != want {
					t.Errorf("contact %d: got type %s, want %s", i, got[i], want)
				}
			}
		})
	}
}

func TestRouteContacts_DoesNotExposeDirectory(t *testing.T) {
	first := RouteContacts(models.CategoryMedical)
	first[0].Name = "mutated"

	second := RouteContacts(models.CategoryMedical)
	if second[0].Name == "mutated" {
		t.Error("mutating a routed slice leaked into the directory")
	}
}

func TestFilterByLocation(t *testing.T) {
	all := FilterByLocation("")
	if len(all) != len(Directory()) {
		t.Errorf("empty filter: got %d contacts, want %d", len(all), len(Directory()))
	}

	kolkata := FilterByLocation("kolKATA")
	if len(kolkata) != len(Directory()) {
		t.Errorf("case-insensitive match: got %d contacts, want %d", len(kolkata), len(Directory()))
	}

	none := FilterByLocation("Mumbai")
	if len(none) != 0 {
		t.Errorf("unmatched location: got %d contacts, want 0", len(none))
	}
}
