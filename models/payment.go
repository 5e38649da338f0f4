package models

import (
	"time"

	"gorm.io/gorm"
)

type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "credit_card"
	MethodDebitCard  PaymentMethod = "debit_card"
	MethodPayPal     PaymentMethod = "paypal"
	MethodPix        PaymentMethod = "pix"
	MethodFree       PaymentMethod = "free"
)

func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodPayPal, MethodPix, MethodFree:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment records one charge attempt against an appointment. Simulated
// failures are persisted too, with Status = failed.
type Payment struct {
	gorm.Model
	AppointmentID uint          `json:"appointment_id" gorm:"index"`
	Appointment   Appointment   `json:"-" gorm:"foreignKey:AppointmentID"`
	UserID        uint          `json:"user_id" gorm:"index"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"type:varchar(20)"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(20)"`
	TransactionID string        `json:"transaction_id"`
	InvoiceURL    string        `json:"invoice_url,omitempty"`
	PaymentDate   time.Time     `json:"payment_date"`
}
