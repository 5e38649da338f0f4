package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ValidateAppointmentDate checks the YYYY-MM-DD format and rejects dates
// before today. The web client disables past dates too, but the server is the
// authority.
func ValidateAppointmentDate(date string, now time.Time) error {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return fmt.Errorf("appointment date %s is in the past", date)
	}
	return nil
}

// FormatLongDate renders a YYYY-MM-DD date the way the email templates show
// it, e.g. "March 10, 2025". Unparseable input is returned unchanged.
func FormatLongDate(date string) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("January 2, 2006")
}
