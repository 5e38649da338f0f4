package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlotCatalog(t *testing.T) {
	require.Len(t, TimeSlots, 12)
	assert.Equal(t, "09:00", TimeSlots[0])
	assert.Equal(t, "11:30", TimeSlots[5])
	assert.Equal(t, "14:00", TimeSlots[6])
	assert.Equal(t, "16:30", TimeSlots[11])
}

func TestIsValidSlot(t *testing.T) {
	assert.True(t, IsValidSlot("09:00"))
	assert.True(t, IsValidSlot("16:30"))
	assert.False(t, IsValidSlot("12:00"))
	assert.False(t, IsValidSlot("9:00"))
	assert.False(t, IsValidSlot(""))
}

func TestFreeSlots(t *testing.T) {
	free := FreeSlots(nil)
	assert.Equal(t, TimeSlots, free)

	free = FreeSlots([]string{"09:00", "14:30"})
	assert.Len(t, free, 10)
	assert.NotContains(t, free, "09:00")
	assert.NotContains(t, free, "14:30")
	assert.Contains(t, free, "09:30")

	// Booked times outside the catalog do not affect the result.
	free = FreeSlots([]string{"12:00"})
	assert.Equal(t, TimeSlots, free)

	free = FreeSlots(TimeSlots)
	assert.Empty(t, free)
}
