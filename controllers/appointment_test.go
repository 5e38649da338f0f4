package controllers

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestValidateBookingInput(t *testing.T) {
	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		time    string
		wantErr bool
	}{
		{"valid booking", "2025-03-10", "09:00", false},
		{"today is bookable", "2025-03-05", "16:30", false},
		{"missing date", "", "09:00", true},
		{"missing time", "2025-03-10", "", true},
		{"both missing", "", "", true},
		{"past date", "2025-03-01", "09:00", true},
		{"malformed date", "03/10/2025", "09:00", true},
		{"time outside slot catalog", "2025-03-10", "12:00", true},
		{"unpadded time", "2025-03-10", "9:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBookingInput(tt.date, tt.time, now)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsSlotConflict(t *testing.T) {
	// Both ways of losing the slot race read as a conflict: the locking
	// probe seeing an existing row, and the unique index rejecting the
	// insert when two transactions raced for an empty slot.
	assert.True(t, isSlotConflict(errSlotTaken))
	assert.True(t, isSlotConflict(gorm.ErrDuplicatedKey))
	assert.True(t, isSlotConflict(fmt.Errorf("booking: %w", errSlotTaken)))
	assert.True(t, isSlotConflict(fmt.Errorf("booking: %w", gorm.ErrDuplicatedKey)))

	assert.False(t, isSlotConflict(nil))
	assert.False(t, isSlotConflict(errors.New("connection reset")))
	assert.False(t, isSlotConflict(gorm.ErrRecordNotFound))
}

func TestOwnedByScopesLookupToRequester(t *testing.T) {
	cond, args := ownedBy("42", uint(7))

	// The ownership check is part of the fetch condition itself, so a row
	// belonging to another user can never match and is left untouched.
	assert.Equal(t, "id = ? AND user_id = ?", cond)
	require.Len(t, args, 2)
	assert.Equal(t, "42", args[0])
	assert.Equal(t, uint(7), args[1])
}
