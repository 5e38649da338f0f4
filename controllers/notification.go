package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medibook/medibook-backend/db"
	"github.com/medibook/medibook-backend/models"
	"github.com/medibook/medibook-backend/utils"
)

// SendAppointmentEmail renders one of the appointment lifecycle templates and
// enqueues it for delivery. The outbox drain owns the actual SMTP call.
func SendAppointmentEmail(c *fiber.Ctx) error {
	type EmailRequest struct {
		UserEmail       string `json:"userEmail"`
		UserName        string `json:"userName"`
		ExamName        string `json:"examName"`
		LaboratoryName  string `json:"laboratoryName"`
		AppointmentDate string `json:"appointmentDate"`
		AppointmentTime string `json:"appointmentTime"`
		Action          string `json:"action"`
		PreviousDate    string `json:"previousDate"`
		PreviousTime    string `json:"previousTime"`
	}
	input := new(EmailRequest)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.UserEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "userEmail is required",
		})
	}
	if input.Action == "" {
		input.Action = string(models.NotifyBooked)
	}

	kind := models.NotificationKind(input.Action)
	subject, body, err := utils.AppointmentEmail(kind, utils.AppointmentEmailData{
		UserName:        input.UserName,
		ExamName:        input.ExamName,
		LaboratoryName:  input.LaboratoryName,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		PreviousDate:    input.PreviousDate,
		PreviousTime:    input.PreviousTime,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown notification action",
			Error:   err.Error(),
		})
	}

	if err := models.Enqueue(db.DB, kind, input.UserEmail, subject, body); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to enqueue notification",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Notification queued",
	})
}

// EnsureStorageBuckets provisions the invoices and profiles storage folders.
// Idempotent.
func EnsureStorageBuckets(c *fiber.Ctx) error {
	if err := utils.EnsureBuckets(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to ensure storage buckets",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Storage buckets checked/created successfully",
	})
}
