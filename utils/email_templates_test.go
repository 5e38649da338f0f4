package utils

import (
	"testing"
	"time"

	"github.com/medibook/medibook-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingData() AppointmentEmailData {
	return AppointmentEmailData{
		UserName:        "Jane Roe",
		ExamName:        "Blood Test",
		LaboratoryName:  "Acme Labs",
		AppointmentDate: "March 10, 2025",
		AppointmentTime: "09:00",
	}
}

func TestBookedEmail(t *testing.T) {
	subject, body, err := AppointmentEmail(models.NotifyBooked, bookingData())
	require.NoError(t, err)
	assert.Equal(t, "Your MediBook Appointment Confirmation", subject)
	assert.Contains(t, body, "Jane Roe")
	assert.Contains(t, body, "Blood Test")
	assert.Contains(t, body, "Acme Labs")
	assert.Contains(t, body, "March 10, 2025")
	assert.Contains(t, body, "09:00")
}

func TestRescheduledEmailCarriesPreviousSlot(t *testing.T) {
	data := bookingData()
	data.PreviousDate = "March 8, 2025"
	data.PreviousTime = "14:00"
	subject, body, err := AppointmentEmail(models.NotifyRescheduled, data)
	require.NoError(t, err)
	assert.Equal(t, "Your MediBook Appointment Has Been Rescheduled", subject)
	assert.Contains(t, body, "March 8, 2025")
	assert.Contains(t, body, "14:00")
	assert.Contains(t, body, "March 10, 2025")
}

func TestCanceledEmail(t *testing.T) {
	subject, body, err := AppointmentEmail(models.NotifyCanceled, bookingData())
	require.NoError(t, err)
	assert.Equal(t, "Your MediBook Appointment Has Been Canceled", subject)
	assert.Contains(t, body, "Cancellation")
}

func TestUnknownKindRejected(t *testing.T) {
	_, _, err := AppointmentEmail(models.NotificationKind("postponed"), bookingData())
	assert.Error(t, err)
}

func paymentData(method models.PaymentMethod, amount float64) PaymentEmailData {
	return PaymentEmailData{
		AppointmentEmailData: bookingData(),
		Amount:               amount,
		PaymentMethod:        method,
		TransactionID:        "tx_test",
		PaymentDate:          time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPaymentEmailPaid(t *testing.T) {
	data := paymentData(models.MethodCreditCard, 50)
	data.InvoiceURL = "https://example.com/invoices/1.html"
	subject, body := PaymentEmail(data)
	assert.Equal(t, "Payment Confirmation - MediBook", subject)
	assert.Contains(t, body, "$50.00")
	assert.Contains(t, body, "tx_test")
	assert.Contains(t, body, "https://example.com/invoices/1.html")
}

func TestPaymentEmailFreeSkipsPaymentBlock(t *testing.T) {
	subject, body := PaymentEmail(paymentData(models.MethodFree, 0))
	assert.Equal(t, "Exam Released - MediBook", subject)
	assert.Contains(t, body, "released for free")
	assert.NotContains(t, body, "Payment Details")
	assert.NotContains(t, body, "tx_test")
}

func TestPaymentAttemptedEmail(t *testing.T) {
	subject, body := PaymentAttemptedEmail(paymentData(models.MethodPix, 80))
	assert.Equal(t, "Payment Attempted - MediBook", subject)
	assert.Contains(t, body, "declined")
	assert.Contains(t, body, "still reserved")
	assert.Contains(t, body, "tx_test")
}
