package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medibook/medibook-backend/db"
	"github.com/medibook/medibook-backend/logger"
	"github.com/medibook/medibook-backend/models"
	"github.com/medibook/medibook-backend/utils"
	"go.uber.org/zap"
)

// Gateway is the simulated payment processor: roughly one in five non-free
// charges is declined. Tests swap it for a deterministic one.
var Gateway = utils.NewPaymentGateway(0.2)

// ProcessPayment records a charge attempt against an appointment. A declined
// simulated charge is a business outcome, not an internal error: the failed
// payment row is persisted, a distinct email goes out, and the appointment
// stays booked.
func ProcessPayment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type PaymentInput struct {
		AppointmentID uint                 `json:"appointment_id"`
		PaymentMethod models.PaymentMethod `json:"payment_method"`
		Amount        float64              `json:"amount"`
	}
	input := new(PaymentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if !models.IsValidPaymentMethod(input.PaymentMethod) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown payment method",
		})
	}
	if input.PaymentMethod == models.MethodFree {
		input.Amount = 0
	}

	ownerCond, ownerArgs := ownedBy(input.AppointmentID, userID)
	var appointment models.Appointment
	if err := db.DB.Preload("LaboratoryExam.Exam").Preload("LaboratoryExam.Laboratory").
		Where(ownerCond, ownerArgs...).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
			Error:   err.Error(),
		})
	}
	userName := profile.FullName
	if userName == "" {
		userName = "Valued Patient"
	}

	txID, approved := Gateway.Charge(input.PaymentMethod, input.Amount)

	payment := models.Payment{
		AppointmentID: appointment.ID,
		UserID:        userID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: models.PaymentCompleted,
		TransactionID: txID,
		PaymentDate:   time.Now(),
	}
	if !approved {
		payment.PaymentStatus = models.PaymentFailed
	}

	if err := db.DB.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to record payment",
			Error:   err.Error(),
		})
	}

	emailData := utils.PaymentEmailData{
		AppointmentEmailData: utils.AppointmentEmailData{
			UserName:        userName,
			ExamName:        appointment.LaboratoryExam.Exam.Name,
			LaboratoryName:  appointment.LaboratoryExam.Laboratory.Name,
			AppointmentDate: utils.FormatLongDate(appointment.AppointmentDate),
			AppointmentTime: appointment.AppointmentTime,
		},
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		TransactionID: payment.TransactionID,
		PaymentDate:   payment.PaymentDate,
	}

	if !approved {
		subject, body := utils.PaymentAttemptedEmail(emailData)
		if profile.Email != "" {
			if err := models.Enqueue(db.DB, models.NotifyPaymentAttempted, profile.Email, subject, body); err != nil {
				logger.Log.Error("failed to enqueue payment email", zap.Error(err))
			}
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Payment was declined, please try again",
			"payment": payment,
		})
	}

	// Free releases carry no invoice.
	if payment.PaymentMethod != models.MethodFree {
		html := utils.RenderInvoiceHTML(&payment, emailData)
		invoiceURL, err := utils.UploadInvoiceHTML(payment.ID, html)
		if err != nil {
			logger.Log.Warn("failed to store invoice", zap.Uint("payment_id", payment.ID), zap.Error(err))
		} else {
			payment.InvoiceURL = invoiceURL
			emailData.InvoiceURL = invoiceURL
			if err := db.DB.Model(&payment).Update("invoice_url", invoiceURL).Error; err != nil {
				logger.Log.Warn("failed to record invoice url", zap.Uint("payment_id", payment.ID), zap.Error(err))
			}
		}
	}

	if profile.Email != "" {
		subject, body := utils.PaymentEmail(emailData)
		if err := models.Enqueue(db.DB, models.NotifyPaymentConfirmed, profile.Email, subject, body); err != nil {
			logger.Log.Error("failed to enqueue payment email", zap.Error(err))
		}
	} else {
		logger.Log.Warn("profile has no email, skipping payment confirmation",
			zap.Uint("user_id", userID))
	}

	message := "Payment processed successfully"
	if payment.PaymentMethod == models.MethodFree {
		message = "Exam released successfully"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"payment": payment,
	})
}

// GetPaymentHistory returns the current user's payments, newest first.
func GetPaymentHistory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var payments []models.Payment
	if err := db.DB.Where("user_id = ?", userID).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch payments",
			Error:   err.Error(),
		})
	}
	return c.JSON(payments)
}
