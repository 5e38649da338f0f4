package utils

import (
	"fmt"
	"time"

	"github.com/medibook/medibook-backend/models"
)

// AppointmentEmailData carries the fields the appointment templates render.
// PreviousDate and PreviousTime are only used by the rescheduled template.
type AppointmentEmailData struct {
	UserName        string
	ExamName        string
	LaboratoryName  string
	AppointmentDate string
	AppointmentTime string
	PreviousDate    string
	PreviousTime    string
}

// AppointmentEmail renders the subject and HTML body for a booking lifecycle
// notification. Returns an error for unknown kinds.
func AppointmentEmail(kind models.NotificationKind, data AppointmentEmailData) (string, string, error) {
	details := fmt.Sprintf(`
		<ul>
			<li>Exam: %s</li>
			<li>Laboratory: %s</li>
			<li>Date: %s</li>
			<li>Time: %s</li>
		</ul>`, data.ExamName, data.LaboratoryName, data.AppointmentDate, data.AppointmentTime)

	switch kind {
	case models.NotifyBooked:
		subject := "Your MediBook Appointment Confirmation"
		body := fmt.Sprintf(`
			<h1>Appointment Confirmation</h1>
			<p>Dear %s,</p>
			<p>Your appointment has been successfully scheduled!</p>
			<h2>Appointment Details:</h2>
			%s
			<p>If you need to reschedule or cancel your appointment, please visit your profile page.</p>
			<p>Best regards,<br>The MediBook Team</p>`, data.UserName, details)
		return subject, body, nil
	case models.NotifyRescheduled:
		subject := "Your MediBook Appointment Has Been Rescheduled"
		body := fmt.Sprintf(`
			<h1>Appointment Rescheduled</h1>
			<p>Dear %s,</p>
			<p>Your appointment has been successfully rescheduled!</p>
			<h2>Previous Appointment:</h2>
			<ul>
				<li>Date: %s</li>
				<li>Time: %s</li>
			</ul>
			<h2>New Appointment Details:</h2>
			%s
			<p>If you need to make further changes to your appointment, please visit your profile page.</p>
			<p>Best regards,<br>The MediBook Team</p>`,
			data.UserName, data.PreviousDate, data.PreviousTime, details)
		return subject, body, nil
	case models.NotifyCanceled:
		subject := "Your MediBook Appointment Has Been Canceled"
		body := fmt.Sprintf(`
			<h1>Appointment Cancellation</h1>
			<p>Dear %s,</p>
			<p>Your appointment has been successfully canceled.</p>
			<h2>Canceled Appointment Details:</h2>
			%s
			<p>If you wish to schedule a new appointment, please visit our website.</p>
			<p>Best regards,<br>The MediBook Team</p>`, data.UserName, details)
		return subject, body, nil
	case models.NotifyReminder:
		subject := "Reminder: Upcoming MediBook Appointment"
		body := fmt.Sprintf(`
			<h1>Appointment Reminder</h1>
			<p>Dear %s,</p>
			<p>This is a reminder for your upcoming appointment tomorrow.</p>
			<h2>Appointment Details:</h2>
			%s
			<p>Please arrive on time. If you need to reschedule or cancel, please visit your profile page.</p>
			<p>Best regards,<br>The MediBook Team</p>`, data.UserName, details)
		return subject, body, nil
	default:
		return "", "", fmt.Errorf("unknown notification kind %q", kind)
	}
}

// PaymentEmailData carries the fields the payment templates render on top of
// the appointment details.
type PaymentEmailData struct {
	AppointmentEmailData
	Amount        float64
	PaymentMethod models.PaymentMethod
	TransactionID string
	PaymentDate   time.Time
	InvoiceURL    string
}

// PaymentEmail renders the confirmation email for a completed charge. Free
// releases get their own wording and skip the payment block entirely.
func PaymentEmail(data PaymentEmailData) (string, string) {
	isFree := data.PaymentMethod == models.MethodFree

	subject := "Payment Confirmation - MediBook"
	heading := "Payment Confirmed"
	intro := fmt.Sprintf("Thank you for your payment of $%.2f for your medical exam.", data.Amount)
	if isFree {
		subject = "Exam Released - MediBook"
		heading = "Exam Released"
		intro = "Your exam has been released for free."
	}

	paymentBlock := ""
	if !isFree {
		invoiceLine := ""
		if data.InvoiceURL != "" {
			invoiceLine = fmt.Sprintf(`<p>You can view your invoice by clicking <a href="%s">here</a>.</p>`, data.InvoiceURL)
		}
		paymentBlock = fmt.Sprintf(`
			<h2>Payment Details:</h2>
			<ul>
				<li>Amount: $%.2f</li>
				<li>Payment Method: %s</li>
				<li>Transaction ID: %s</li>
				<li>Payment Date: %s</li>
			</ul>
			%s`, data.Amount, data.PaymentMethod, data.TransactionID,
			data.PaymentDate.Format("2006-01-02 15:04:05"), invoiceLine)
	}

	body := fmt.Sprintf(`
		<h1>%s</h1>
		<p>Dear %s,</p>
		<p>%s</p>
		<h2>Appointment Details:</h2>
		<ul>
			<li>Exam: %s</li>
			<li>Laboratory: %s</li>
			<li>Date: %s</li>
			<li>Time: %s</li>
		</ul>
		%s
		<p>Thank you for choosing MediBook for your medical exams.</p>`,
		heading, data.UserName, intro,
		data.ExamName, data.LaboratoryName, data.AppointmentDate, data.AppointmentTime,
		paymentBlock)

	return subject, body
}

// PaymentAttemptedEmail renders the distinct notification for a simulated
// gateway failure. The appointment itself stays booked.
func PaymentAttemptedEmail(data PaymentEmailData) (string, string) {
	subject := "Payment Attempted - MediBook"
	body := fmt.Sprintf(`
		<h1>Payment Attempted</h1>
		<p>Dear %s,</p>
		<p>We attempted to process your payment of $%.2f but the charge was declined.</p>
		<p>Your appointment is still reserved. Please try again from your exams page.</p>
		<h2>Appointment Details:</h2>
		<ul>
			<li>Exam: %s</li>
			<li>Laboratory: %s</li>
			<li>Date: %s</li>
			<li>Time: %s</li>
		</ul>
		<p>Transaction reference: %s</p>
		<p>Thank you for choosing MediBook for your medical exams.</p>`,
		data.UserName, data.Amount,
		data.ExamName, data.LaboratoryName, data.AppointmentDate, data.AppointmentTime,
		data.TransactionID)
	return subject, body
}
