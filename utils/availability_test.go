package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentSlotCondsForDate(t *testing.T) {
	cond, args := appointmentSlotConds(3, "2025-03-10", "", 0)

	assert.Contains(t, cond, "laboratory_exam_id = ?")
	assert.Contains(t, cond, "appointment_date = ?")
	assert.Contains(t, cond, "status NOT IN ('canceled')")
	assert.NotContains(t, cond, "appointment_time")
	assert.NotContains(t, cond, "id <>")
	assert.Equal(t, []interface{}{uint(3), "2025-03-10"}, args)
}

func TestAppointmentSlotCondsForSingleSlot(t *testing.T) {
	cond, args := appointmentSlotConds(3, "2025-03-10", "09:30", 0)

	assert.Contains(t, cond, "appointment_time = ?")
	assert.Equal(t, []interface{}{uint(3), "2025-03-10", "09:30"}, args)
}

func TestAppointmentSlotCondsExcludesOwnRow(t *testing.T) {
	// A reschedule probes the target slot while skipping the appointment's
	// own row, so keeping the same slot is never reported as a conflict.
	cond, args := appointmentSlotConds(3, "2025-03-10", "09:30", 7)

	require.Contains(t, cond, "id <> ?")
	assert.Equal(t, []interface{}{uint(3), "2025-03-10", "09:30", uint(7)}, args)

	// Placeholder count and bound args stay in lockstep.
	assert.Equal(t, len(args), strings.Count(cond, "?"))
}
