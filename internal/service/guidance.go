package service

import "github.com/yatriai/sos-alerts/internal/models"

// guidanceTips is static safety guidance keyed by category. Unknown
// categories fall back to the general list.
var guidanceTips = map[models.AlertCategory][]string{
	models.CategoryMedical: {
		"Stay calm and find a safe location",
		"Call 108 for immediate medical assistance",
		"If conscious, provide basic first aid",
		"Share your exact location with emergency contacts",
	},
	models.CategorySecurity: {
		"Move to a crowded, well-lit area if possible",
		"Contact local police (100) immediately",
		"Alert nearby people for help",
		"Document the incident if safe to do so",
	},
	models.CategoryTransport: {
		"Contact local transport authority",
		"Share your location with family/friends",
		"Look for alternative transport options",
		"Stay in a safe, visible location",
	},
	models.CategoryWeather: {
		"Seek immediate shelter",
		"Monitor weather updates",
		"Avoid flooded areas",
		"Contact local authorities if trapped",
	},
	models.CategoryGeneral: {
		"Assess the situation calmly",
		"Contact appropriate emergency services",
		"Share your location with trusted contacts",
		"Follow local authority instructions",
	},
}

func tipsFor(category models.AlertCategory) []string {
	tips, ok := guidanceTips[category]
	if !ok {
		tips = guidanceTips[models.CategoryGeneral]
	}
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
