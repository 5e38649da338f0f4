package utils

import (
	"fmt"

	"github.com/medibook/medibook-backend/models"
)

// RenderInvoiceHTML builds the static receipt page stored in the invoices
// bucket and linked from the payment record. Free releases carry no invoice.
func RenderInvoiceHTML(payment *models.Payment, data PaymentEmailData) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>MediBook Invoice %d</title></head>
<body>
	<h1>MediBook Invoice</h1>
	<p>Invoice #%d</p>
	<h2>Billed To</h2>
	<p>%s</p>
	<h2>Appointment</h2>
	<ul>
		<li>Exam: %s</li>
		<li>Laboratory: %s</li>
		<li>Date: %s</li>
		<li>Time: %s</li>
	</ul>
	<h2>Payment</h2>
	<ul>
		<li>Amount: $%.2f</li>
		<li>Payment Method: %s</li>
		<li>Transaction ID: %s</li>
		<li>Payment Date: %s</li>
	</ul>
	<p>Thank you for choosing MediBook.</p>
</body>
</html>`,
		payment.ID, payment.ID, data.UserName,
		data.ExamName, data.LaboratoryName, data.AppointmentDate, data.AppointmentTime,
		payment.Amount, payment.PaymentMethod, payment.TransactionID,
		payment.PaymentDate.Format("2006-01-02 15:04:05"))
}
