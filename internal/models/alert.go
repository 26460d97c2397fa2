package models

import (
	"fmt"
	"time"
)

type AlertCategory string

const (
	CategoryMedical   AlertCategory = "medical"
	CategorySecurity  AlertCategory = "security"
	CategoryTransport AlertCategory = "transport"
	CategoryWeather   AlertCategory = "weather"
	CategoryGeneral   AlertCategory = "general"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities for comparison. Higher is more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	}
	return -1
}

type AlertStatus string

const (
	StatusActive       AlertStatus = "active"
	StatusAcknowledged AlertStatus = "acknowledged"
	StatusResolved     AlertStatus = "resolved"
	StatusCancelled    AlertStatus = "cancelled"
)

func ParseAlertStatus(s string) (AlertStatus, bool) {
	switch AlertStatus(s) {
	case StatusActive, StatusAcknowledged, StatusResolved, StatusCancelled:
		return AlertStatus(s), true
	}
	return "", false
}

type Location struct {
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Address   string  `json:"address"`
}

func (l Location) IsZero() bool {
	return l.Address == "" && l.Latitude == 0 && l.Longitude == 0
}

func (l Location) HasCoordinates() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

// MapsURL returns a Google Maps link for the coordinates, or "" if none are set.
func (l Location) MapsURL() string {
	if !l.HasCoordinates() {
		return ""
	}
	return fmt.Sprintf("https://maps.google.com/?q=%f,%f", l.Latitude, l.Longitude)
}

func (l Location) String() string {
	if l.Address != "" {
		return l.Address
	}
	if l.HasCoordinates() {
		return fmt.Sprintf("%.4f, %.4f", l.Latitude, l.Longitude)
	}
	return "unknown"
}

// ResponderAck records one actor acknowledging or closing an alert.
// The Responders list on an Alert is append-only.
type ResponderAck struct {
	Name   string      `json:"name"`
	Status AlertStatus `json:"status"`
	At     time.Time   `json:"at"`
}

// Alert is a single reported emergency event. ID, Severity,
// EstimatedResponseMinutes and CreatedAt are immutable after creation;
// Status only moves forward through the lifecycle state machine.
type Alert struct {
	ID                       string         `json:"id"`
	ReporterID               string         `json:"reporterId"`
	Category                 AlertCategory  `json:"category"`
	Severity                 Severity       `json:"severity"`
	Location                 Location       `json:"location"`
	Message                  string         `json:"message"`
	Status                   AlertStatus    `json:"status"`
	CreatedAt                time.Time      `json:"createdAt"`
	EstimatedResponseMinutes int            `json:"estimatedResponseMinutes"`
	Responders               []ResponderAck `json:"responders"`
}
