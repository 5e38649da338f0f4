package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"scheduled to canceled", StatusScheduled, StatusCanceled, true},
		{"scheduled to rescheduled", StatusScheduled, StatusRescheduled, true},
		{"scheduled to completed", StatusScheduled, StatusCompleted, true},
		{"scheduled to scheduled", StatusScheduled, StatusScheduled, false},
		{"rescheduled to canceled", StatusRescheduled, StatusCanceled, true},
		{"rescheduled to rescheduled", StatusRescheduled, StatusRescheduled, true},
		{"canceled is terminal", StatusCanceled, StatusScheduled, false},
		{"canceled cannot be canceled again", StatusCanceled, StatusCanceled, false},
		{"completed is terminal", StatusCompleted, StatusCanceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{Status: tt.from}
			err := a.CanTransition(tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusScheduled}).IsActive())
	assert.True(t, (&Appointment{Status: StatusRescheduled}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCanceled}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCompleted}).IsActive())
}

func TestIsValidExamType(t *testing.T) {
	assert.Len(t, ExamTypes, 9)
	assert.True(t, IsValidExamType(ExamBloodTest))
	assert.True(t, IsValidExamType(ExamOther))
	assert.False(t, IsValidExamType(ExamType("dna_test")))
}

func TestIsValidPaymentMethod(t *testing.T) {
	assert.True(t, IsValidPaymentMethod(MethodCreditCard))
	assert.True(t, IsValidPaymentMethod(MethodPix))
	assert.True(t, IsValidPaymentMethod(MethodFree))
	assert.False(t, IsValidPaymentMethod(PaymentMethod("cash")))
}
