package cron

import (
	"time"

	"github.com/medibook/medibook-backend/db"
	"github.com/medibook/medibook-backend/logger"
	"github.com/medibook/medibook-backend/models"
	"github.com/medibook/medibook-backend/utils"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartCronJobs starts the outbox drain and the daily appointment reminder.
func StartCronJobs() {
	c := cron.New()

	// Drain pending notifications every minute.
	if _, err := c.AddFunc("* * * * *", drainNotificationOutbox); err != nil {
		logger.Log.Fatal("failed to register outbox drain", zap.Error(err))
	}

	// Remind users of tomorrow's appointments every morning.
	if _, err := c.AddFunc("0 8 * * *", sendAppointmentReminders); err != nil {
		logger.Log.Fatal("failed to register reminder job", zap.Error(err))
	}

	c.Start()
	logger.Log.Info("cron scheduler started")
}

// drainNotificationOutbox delivers pending notifications over SMTP. Each row
// gets up to MaxNotificationAttempts tries before it is parked as failed.
func drainNotificationOutbox() {
	var pending []models.Notification
	if err := db.DB.Where("status = ?", models.NotificationPending).
		Order("created_at").
		Limit(50).
		Find(&pending).Error; err != nil {
		logger.Log.Error("failed to fetch pending notifications", zap.Error(err))
		return
	}

	for i := range pending {
		n := &pending[i]
		err := utils.SendEmail(n.Recipient, n.Subject, n.Body)
		n.Attempts++
		if err != nil {
			n.LastError = err.Error()
			if n.Attempts >= models.MaxNotificationAttempts {
				n.Status = models.NotificationFailed
			}
			logger.Log.Warn("notification delivery failed",
				zap.Uint("id", n.ID),
				zap.String("kind", string(n.Kind)),
				zap.Int("attempts", n.Attempts),
				zap.Error(err))
		} else {
			now := time.Now()
			n.Status = models.NotificationSent
			n.SentAt = &now
			n.LastError = ""
		}
		if err := db.DB.Save(n).Error; err != nil {
			logger.Log.Error("failed to update notification", zap.Uint("id", n.ID), zap.Error(err))
		}
	}
}

// sendAppointmentReminders enqueues a reminder for every active appointment
// scheduled for tomorrow.
func sendAppointmentReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var appointments []models.Appointment
	err := db.DB.
		Preload("LaboratoryExam.Exam").
		Preload("LaboratoryExam.Laboratory").
		Where("appointment_date = ? AND status IN ?", tomorrow,
			[]models.AppointmentStatus{models.StatusScheduled, models.StatusRescheduled}).
		Find(&appointments).Error
	if err != nil {
		logger.Log.Error("failed to fetch appointments for reminders", zap.Error(err))
		return
	}

	for _, appointment := range appointments {
		var profile models.Profile
		if err := db.DB.Where("user_id = ?", appointment.UserID).First(&profile).Error; err != nil {
			logger.Log.Warn("skipping reminder, profile not found",
				zap.Uint("appointment_id", appointment.ID), zap.Error(err))
			continue
		}
		if profile.Email == "" {
			continue
		}

		userName := profile.FullName
		if userName == "" {
			userName = "Valued Patient"
		}

		subject, body, err := utils.AppointmentEmail(models.NotifyReminder, utils.AppointmentEmailData{
			UserName:        userName,
			ExamName:        appointment.LaboratoryExam.Exam.Name,
			LaboratoryName:  appointment.LaboratoryExam.Laboratory.Name,
			AppointmentDate: utils.FormatLongDate(appointment.AppointmentDate),
			AppointmentTime: appointment.AppointmentTime,
		})
		if err != nil {
			logger.Log.Error("failed to render reminder", zap.Error(err))
			continue
		}

		if err := models.Enqueue(db.DB, models.NotifyReminder, profile.Email, subject, body); err != nil {
			logger.Log.Error("failed to enqueue reminder",
				zap.Uint("appointment_id", appointment.ID), zap.Error(err))
		}
	}
}
