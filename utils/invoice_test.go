package utils

import (
	"testing"
	"time"

	"github.com/medibook/medibook-backend/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestRenderInvoiceHTML(t *testing.T) {
	payment := models.Payment{
		Model:         gorm.Model{ID: 42},
		Amount:        300,
		PaymentMethod: models.MethodCreditCard,
		TransactionID: "tx_abc",
		PaymentDate:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	data := PaymentEmailData{
		AppointmentEmailData: AppointmentEmailData{
			UserName:        "Jane Roe",
			ExamName:        "CT Scan",
			LaboratoryName:  "Central Diagnostics",
			AppointmentDate: "March 10, 2025",
			AppointmentTime: "10:30",
		},
	}

	html := RenderInvoiceHTML(&payment, data)
	assert.Contains(t, html, "Invoice #42")
	assert.Contains(t, html, "Jane Roe")
	assert.Contains(t, html, "CT Scan")
	assert.Contains(t, html, "$300.00")
	assert.Contains(t, html, "tx_abc")
	assert.Contains(t, html, "2025-03-01 12:00:00")
}
