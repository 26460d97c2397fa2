package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/yatriai/sos-alerts/internal/events"
)

const smsTimeLayout = "02 Jan 2006 15:04:05 MST"

func smsBody(e events.Event) string {
	if e.Kind == events.KindStatusChanged {
		return statusSMSBody(e)
	}
	return alertSMSBody(e)
}

func alertSMSBody(e events.Event) string {
	var b strings.Builder
	b.WriteString("EMERGENCY ALERT\n\n")
	fmt.Fprintf(&b, "Type: %s\n", strings.ToUpper(string(e.Alert.Category)))
	fmt.Fprintf(&b, "User: %s\n", reporterName(e))
	fmt.Fprintf(&b, "Message: %s\n", e.Alert.Message)
	fmt.Fprintf(&b, "Location: %s\n", e.Alert.Location)
	if maps := e.Alert.Location.MapsURL(); maps != "" {
		fmt.Fprintf(&b, "Maps: %s\n", maps)
	}
	fmt.Fprintf(&b, "Time: %s\n", e.Alert.CreatedAt.Format(smsTimeLayout))
	fmt.Fprintf(&b, "Alert ID: %s\n", e.Alert.ID)
	b.WriteString("\nAutomated emergency notification from the tourist SOS system.")
	return b.String()
}

func statusSMSBody(e events.Event) string {
	var b strings.Builder
	b.WriteString("SOS STATUS UPDATE\n\n")
	fmt.Fprintf(&b, "Alert ID: %s\n", e.Alert.ID)
	fmt.Fprintf(&b, "Updated by: %s\n", actorName(e))
	fmt.Fprintf(&b, "Status: %s -> %s\n", strings.ToUpper(string(e.OldStatus)), strings.ToUpper(string(e.NewStatus)))
	fmt.Fprintf(&b, "Time: %s\n", e.At.Format(smsTimeLayout))
	b.WriteString("\nTourist SOS system")
	return b.String()
}

func testSMSBody(now time.Time) string {
	return fmt.Sprintf(
		"TEST NOTIFICATION\n\nThis is a test message from the tourist SOS system.\nSMS notifications are working correctly.\n\nTime: %s",
		now.Format(smsTimeLayout),
	)
}

func reporterName(e events.Event) string {
	if e.ReporterName != "" {
		return e.ReporterName
	}
	return "Unknown User"
}

func actorName(e events.Event) string {
	if e.Actor != "" {
		return e.Actor
	}
	return "Unknown User"
}
