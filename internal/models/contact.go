package models

type ContactType string

const (
	ContactPolice          ContactType = "police"
	ContactMedical         ContactType = "medical"
	ContactFire            ContactType = "fire"
	ContactTouristHelpline ContactType = "tourist_helpline"
	ContactEmbassy         ContactType = "embassy"
)

// EmergencyContact is static reference data; the directory is read-only.
type EmergencyContact struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Phone         string      `json:"phone"`
	Type          ContactType `json:"type"`
	Location      string      `json:"location"`
	Available24x7 bool        `json:"available24x7"`
}
