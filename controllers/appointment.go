package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medibook/medibook-backend/db"
	"github.com/medibook/medibook-backend/logger"
	"github.com/medibook/medibook-backend/models"
	"github.com/medibook/medibook-backend/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errSlotTaken = errors.New("slot no longer available")

// isSlotConflict reports whether a booking transaction lost the slot to a
// concurrent request. The locking probe only sees rows that already exist;
// when two transactions race for an empty slot, the loser trips the partial
// unique index instead and surfaces as gorm.ErrDuplicatedKey.
func isSlotConflict(err error) bool {
	return errors.Is(err, errSlotTaken) || errors.Is(err, gorm.ErrDuplicatedKey)
}

// ownedBy folds the ownership check into the row lookup itself: another
// user's appointment or payment reads as not found and is never updated.
func ownedBy(id interface{}, userID uint) (string, []interface{}) {
	return "id = ? AND user_id = ?", []interface{}{id, userID}
}

// validateBookingInput guards a create/reschedule request before any row is
// written: both fields present, the time drawn from the fixed slot catalog,
// the date well-formed and not in the past.
func validateBookingInput(date, timeSlot string, now time.Time) error {
	if date == "" || timeSlot == "" {
		return errors.New("please select both date and time for your appointment")
	}
	if err := utils.ValidateAppointmentDate(date, now); err != nil {
		return err
	}
	if !models.IsValidSlot(timeSlot) {
		return errors.New("selected time is not a bookable slot")
	}
	return nil
}

// GetMyAppointments returns the current user's appointments with exam and
// laboratory details, ordered by date then time.
func GetMyAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var appointments []models.Appointment
	if err := db.DB.
		Preload("LaboratoryExam.Exam").
		Preload("LaboratoryExam.Laboratory").
		Where("user_id = ?", userID).
		Order("appointment_date, appointment_time").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAvailability returns the booked times and the remaining free slots for a
// pairing on a date. exclude skips one appointment id, for reschedule dialogs.
func GetAvailability(c *fiber.Ctx) error {
	pairingID, err := strconv.ParseUint(c.Query("laboratory_exam_id"), 10, 64)
	if err != nil || pairingID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "laboratory_exam_id is required",
		})
	}
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "date is required",
		})
	}
	excludeID, _ := strconv.ParseUint(c.Query("exclude"), 10, 64)

	booked, err := utils.BookedTimes(db.DB, uint(pairingID), date, uint(excludeID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"slots":  models.TimeSlots,
		"booked": booked,
		"free":   models.FreeSlots(booked),
	})
}

// CreateAppointment books a slot. The insert runs in a transaction with a
// locking conflict probe; the partial unique index backs it up, so a lost
// race surfaces as 409 instead of a double booking.
func CreateAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type CreateInput struct {
		LaboratoryExamID uint   `json:"laboratory_exam_id"`
		AppointmentDate  string `json:"appointment_date"`
		AppointmentTime  string `json:"appointment_time"`
	}
	input := new(CreateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := validateBookingInput(input.AppointmentDate, input.AppointmentTime, time.Now()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	var pairing models.LaboratoryExam
	if err := db.DB.Preload("Exam").Preload("Laboratory").
		First(&pairing, input.LaboratoryExamID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Exam offering not found",
			Error:   err.Error(),
		})
	}

	appointment := models.Appointment{
		LaboratoryExamID: pairing.ID,
		UserID:           userID,
		AppointmentDate:  input.AppointmentDate,
		AppointmentTime:  input.AppointmentTime,
		Status:           models.StatusScheduled,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		taken, err := utils.SlotTaken(tx, pairing.ID, input.AppointmentDate, input.AppointmentTime, 0)
		if err != nil {
			return err
		}
		if taken {
			return errSlotTaken
		}
		return tx.Create(&appointment).Error
	})
	if isSlotConflict(err) {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Slot no longer available",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	enqueueAppointmentEmail(models.NotifyBooked, &appointment, &pairing, "", "")

	appointment.LaboratoryExam = pairing
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// CancelAppointment sets status=canceled. The owner guard is part of the
// lookup, so another user's appointment reads as not found and stays
// untouched.
func CancelAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	ownerCond, ownerArgs := ownedBy(id, userID)
	var appointment models.Appointment
	if err := db.DB.Preload("LaboratoryExam.Exam").Preload("LaboratoryExam.Laboratory").
		Where(ownerCond, ownerArgs...).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.CanTransition(models.StatusCanceled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	if err := db.DB.Model(&appointment).Update("status", models.StatusCanceled).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel appointment",
			Error:   err.Error(),
		})
	}

	enqueueAppointmentEmail(models.NotifyCanceled, &appointment, &appointment.LaboratoryExam, "", "")

	return c.JSON(appointment)
}

// RescheduleAppointment moves an owned appointment to a new date and time,
// re-validating availability while excluding the appointment's own row.
func RescheduleAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	type RescheduleInput struct {
		AppointmentDate string `json:"appointment_date"`
		AppointmentTime string `json:"appointment_time"`
	}
	input := new(RescheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := validateBookingInput(input.AppointmentDate, input.AppointmentTime, time.Now()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	ownerCond, ownerArgs := ownedBy(id, userID)
	var appointment models.Appointment
	if err := db.DB.Preload("LaboratoryExam.Exam").Preload("LaboratoryExam.Laboratory").
		Where(ownerCond, ownerArgs...).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.CanTransition(models.StatusRescheduled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	previousDate := appointment.AppointmentDate
	previousTime := appointment.AppointmentTime

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		taken, err := utils.SlotTaken(tx, appointment.LaboratoryExamID,
			input.AppointmentDate, input.AppointmentTime, appointment.ID)
		if err != nil {
			return err
		}
		if taken {
			return errSlotTaken
		}
		return tx.Model(&appointment).Updates(map[string]interface{}{
			"appointment_date": input.AppointmentDate,
			"appointment_time": input.AppointmentTime,
			"status":           models.StatusRescheduled,
		}).Error
	})
	if isSlotConflict(err) {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Slot no longer available",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to reschedule appointment",
			Error:   err.Error(),
		})
	}

	enqueueAppointmentEmail(models.NotifyRescheduled, &appointment, &appointment.LaboratoryExam,
		previousDate, previousTime)

	return c.JSON(appointment)
}

// enqueueAppointmentEmail renders the lifecycle template for the appointment
// owner and stores it in the outbox. Failures are logged and swallowed; the
// booking transition has already committed.
func enqueueAppointmentEmail(kind models.NotificationKind, appointment *models.Appointment,
	pairing *models.LaboratoryExam, previousDate, previousTime string) {

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", appointment.UserID).First(&profile).Error; err != nil {
		logger.Log.Warn("skipping notification, profile not found",
			zap.Uint("user_id", appointment.UserID), zap.Error(err))
		return
	}
	if profile.Email == "" {
		logger.Log.Warn("skipping notification, profile has no email",
			zap.Uint("user_id", appointment.UserID))
		return
	}

	userName := profile.FullName
	if userName == "" {
		userName = "Valued Patient"
	}

	data := utils.AppointmentEmailData{
		UserName:        userName,
		ExamName:        pairing.Exam.Name,
		LaboratoryName:  pairing.Laboratory.Name,
		AppointmentDate: utils.FormatLongDate(appointment.AppointmentDate),
		AppointmentTime: appointment.AppointmentTime,
		PreviousDate:    utils.FormatLongDate(previousDate),
		PreviousTime:    previousTime,
	}

	subject, body, err := utils.AppointmentEmail(kind, data)
	if err != nil {
		logger.Log.Error("failed to render notification", zap.String("kind", string(kind)), zap.Error(err))
		return
	}
	if err := models.Enqueue(db.DB, kind, profile.Email, subject, body); err != nil {
		logger.Log.Error("failed to enqueue notification", zap.String("kind", string(kind)), zap.Error(err))
	}
}
