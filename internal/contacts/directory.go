// Package contacts holds the static emergency-contact directory and the
// category routing table. The directory is read-only and safe for concurrent
// use; every accessor returns a copy.
package contacts

import (
	"strings"

	"github.com/yatriai/sos-alerts/internal/models"
)

var directory = []models.EmergencyContact{
	{
		ID:            "police-1",
		Name:          "Kolkata Police Control Room",
		Phone:         "100",
		Type:          models.ContactPolice,
		Location:      "Kolkata",
		Available24x7: true,
	},
	{
		ID:            "medical-1",
		Name:          "Medical Emergency",
		Phone:         "108",
		Type:          models.ContactMedical,
		Location:      "Kolkata",
		Available24x7: true,
	},
	{
		ID:            "fire-1",
		Name:          "Fire Brigade",
		Phone:         "101",
		Type:          models.ContactFire,
		Location:      "Kolkata",
		Available24x7: true,
	},
	{
		ID:            "tourist-1",
		Name:          "West Bengal Tourism Helpline",
		Phone:         "1363",
		Type:          models.ContactTouristHelpline,
		Location:      "Kolkata",
		Available24x7: true,
	},
	{
		ID:            "embassy-1",
		Name:          "Tourist Assistance Center",
		Phone:         "+91-33-2248-8271",
		Type:          models.ContactEmbassy,
		Location:      "Kolkata",
		Available24x7: false,
	},
}

var routes = map[models.AlertCategory][]models.ContactType{
	models.CategoryMedical:   {models.ContactMedical, models.ContactPolice},
	models.CategorySecurity:  {models.ContactPolice},
	models.CategoryTransport: {models.ContactTouristHelpline},
}

var defaultRoute = []models.ContactType{models.ContactTouristHelpline, models.ContactPolice}

// RouteContacts returns the directory entries relevant to a category, in
// directory insertion order. Categories without an explicit route (weather,
// general, anything unknown) get the default route.
func RouteContacts(category models.AlertCategory) []models.EmergencyContact {
	types, ok := routes[category]
	if !ok {
		types = defaultRoute
	}

	wanted := make(map[models.ContactType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	var matched []models.EmergencyContact
	for _, c := range directory {
		if wanted[c.Type] {
			matched = append(matched, c)
		}
	}
	return matched
}

// Directory returns a copy of the full contact directory.
func Directory() []models.EmergencyContact {
	out := make([]models.EmergencyContact, len(directory))
	copy(out, directory)
	return out
}

// FilterByLocation returns contacts whose location contains the given
// substring, case-insensitively. An empty filter returns the full directory.
func FilterByLocation(location string) []models.EmergencyContact {
	if location == "" {
		return Directory()
	}

	needle := strings.ToLower(location)
	var matched []models.EmergencyContact
	for _, c := range directory {
		if strings.Contains(strings.ToLower(c.Location), needle) {
			matched = append(matched, c)
		}
	}
	return matched
}
