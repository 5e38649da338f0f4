package utils

import (
	"github.com/medibook/medibook-backend/models"
	"gorm.io/gorm"
)

// appointmentSlotConds builds the filter matching active (non-canceled)
// appointments holding slots for a pairing on a date. timeSlot narrows the
// match to a single slot when non-empty. excludeID skips an appointment's
// own row so a reschedule does not see itself as a conflict; pass 0 to
// include everything.
func appointmentSlotConds(laboratoryExamID uint, date, timeSlot string, excludeID uint) (string, []interface{}) {
	cond := "laboratory_exam_id = ? AND appointment_date = ? AND status NOT IN ('canceled')"
	args := []interface{}{laboratoryExamID, date}
	if timeSlot != "" {
		cond += " AND appointment_time = ?"
		args = append(args, timeSlot)
	}
	if excludeID != 0 {
		cond += " AND id <> ?"
		args = append(args, excludeID)
	}
	return cond, args
}

// BookedTimes returns the appointment times already occupied by non-canceled
// appointments for a laboratory-exam pairing on a date.
func BookedTimes(tx *gorm.DB, laboratoryExamID uint, date string, excludeID uint) ([]string, error) {
	cond, args := appointmentSlotConds(laboratoryExamID, date, "", excludeID)

	var times []string
	err := tx.Model(&models.Appointment{}).
		Where(cond, args...).
		Order("appointment_time").
		Pluck("appointment_time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

// SlotTaken locks and probes for a conflicting appointment inside the booking
// transaction. The partial unique index is the hard guard; this probe turns
// the common case into a clean conflict error instead of a constraint
// violation.
func SlotTaken(tx *gorm.DB, laboratoryExamID uint, date, timeSlot string, excludeID uint) (bool, error) {
	cond, args := appointmentSlotConds(laboratoryExamID, date, timeSlot, excludeID)

	var existing models.Appointment
	err := tx.Raw(
		"SELECT * FROM appointments WHERE "+cond+" AND deleted_at IS NULL FOR UPDATE LIMIT 1",
		args...,
	).Scan(&existing).Error
	if err != nil {
		return false, err
	}
	return existing.ID != 0, nil
}
