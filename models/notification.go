package models

import (
	"time"

	"gorm.io/gorm"
)

type NotificationKind string

const (
	NotifyBooked           NotificationKind = "booked"
	NotifyRescheduled      NotificationKind = "rescheduled"
	NotifyCanceled         NotificationKind = "canceled"
	NotifyPaymentConfirmed NotificationKind = "payment_confirmed"
	NotifyPaymentAttempted NotificationKind = "payment_attempted"
	NotifyReminder         NotificationKind = "reminder"
)

type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// Notification is an outbox row for an outgoing email. Handlers only enqueue;
// the cron drain owns SMTP delivery and retries, so an unreachable mail server
// never blocks a booking or payment transition.
type Notification struct {
	gorm.Model
	Recipient string             `json:"recipient"`
	Subject   string             `json:"subject"`
	Body      string             `json:"body"`
	Kind      NotificationKind   `json:"kind" gorm:"type:varchar(30)"`
	Status    NotificationStatus `json:"status" gorm:"type:varchar(10);index;default:pending"`
	Attempts  int                `json:"attempts"`
	LastError string             `json:"last_error,omitempty"`
	SentAt    *time.Time         `json:"sent_at,omitempty"`
}

// MaxNotificationAttempts bounds outbox retries before a row is parked as failed.
const MaxNotificationAttempts = 3

// Enqueue stores an outgoing email for the outbox drain to deliver.
func Enqueue(tx *gorm.DB, kind NotificationKind, recipient, subject, body string) error {
	n := Notification{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		Kind:      kind,
		Status:    NotificationPending,
	}
	return tx.Create(&n).Error
}
