package models

import (
	"fmt"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "scheduled"
	StatusCompleted   AppointmentStatus = "completed"
	StatusCanceled    AppointmentStatus = "canceled"
	StatusRescheduled AppointmentStatus = "rescheduled"
)

// Appointment is a booked slot for a laboratory-exam pairing. Rows are never
// deleted; the lifecycle is tracked through Status.
type Appointment struct {
	gorm.Model
	LaboratoryExamID uint              `json:"laboratory_exam_id"`
	LaboratoryExam   LaboratoryExam    `json:"laboratory_exam" gorm:"foreignKey:LaboratoryExamID"`
	UserID           uint              `json:"user_id" gorm:"index"`
	User             User              `json:"-" gorm:"foreignKey:UserID"`
	AppointmentDate  string            `json:"appointment_date" gorm:"type:varchar(10);index"`
	AppointmentTime  string            `json:"appointment_time" gorm:"type:varchar(5)"`
	Status           AppointmentStatus `json:"status" gorm:"type:varchar(20);index"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	return nil
}

// IsActive reports whether the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusScheduled || a.Status == StatusRescheduled
}

// CanTransition validates a status change against the lifecycle: scheduled and
// rescheduled appointments may be canceled, rescheduled or completed; canceled
// and completed are terminal.
func (a *Appointment) CanTransition(next AppointmentStatus) error {
	switch a.Status {
	case StatusScheduled, StatusRescheduled:
		if next == StatusCanceled || next == StatusRescheduled || next == StatusCompleted {
			return nil
		}
		return fmt.Errorf("invalid transition from %s to %s", a.Status, next)
	case StatusCanceled, StatusCompleted:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	default:
		return fmt.Errorf("unknown status %s", a.Status)
	}
}
