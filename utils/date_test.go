package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateAppointmentDate(t *testing.T) {
	now := time.Date(2025, 3, 5, 15, 30, 0, 0, time.UTC)

	assert.NoError(t, ValidateAppointmentDate("2025-03-05", now)) // today is bookable
	assert.NoError(t, ValidateAppointmentDate("2025-03-10", now))
	assert.Error(t, ValidateAppointmentDate("2025-03-04", now))
	assert.Error(t, ValidateAppointmentDate("10/03/2025", now))
	assert.Error(t, ValidateAppointmentDate("", now))
}

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "March 10, 2025", FormatLongDate("2025-03-10"))
	assert.Equal(t, "not-a-date", FormatLongDate("not-a-date"))
	assert.Equal(t, "", FormatLongDate(""))
}
