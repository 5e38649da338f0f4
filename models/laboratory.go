package models

import (
	"gorm.io/gorm"
)

// Laboratory is immutable reference data for a diagnostic facility.
type Laboratory struct {
	gorm.Model
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city" gorm:"index"`
	State   string `json:"state"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// LaboratoryExam joins Exam and Laboratory: this lab offers this exam.
type LaboratoryExam struct {
	gorm.Model
	LaboratoryID         uint       `json:"laboratory_id" gorm:"index:idx_lab_exam,unique"`
	Laboratory           Laboratory `json:"laboratory" gorm:"foreignKey:LaboratoryID"`
	ExamID               uint       `json:"exam_id" gorm:"index:idx_lab_exam,unique"`
	Exam                 Exam       `json:"exam" gorm:"foreignKey:ExamID"`
	AvailableSlotsPerDay int        `json:"available_slots_per_day" gorm:"default:12"`
}
