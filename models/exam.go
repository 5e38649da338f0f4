package models

import (
	"gorm.io/gorm"
)

type ExamType string

const (
	ExamBloodTest   ExamType = "blood_test"
	ExamXRay        ExamType = "x_ray"
	ExamMRI         ExamType = "mri"
	ExamCTScan      ExamType = "ct_scan"
	ExamUltrasound  ExamType = "ultrasound"
	ExamEndoscopy   ExamType = "endoscopy"
	ExamColonoscopy ExamType = "colonoscopy"
	ExamMammogram   ExamType = "mammogram"
	ExamOther       ExamType = "other"
)

// ExamTypes lists every valid exam category, in catalog order.
var ExamTypes = []ExamType{
	ExamBloodTest,
	ExamXRay,
	ExamMRI,
	ExamCTScan,
	ExamUltrasound,
	ExamEndoscopy,
	ExamColonoscopy,
	ExamMammogram,
	ExamOther,
}

func IsValidExamType(t ExamType) bool {
	for _, et := range ExamTypes {
		if et == t {
			return true
		}
	}
	return false
}

// Exam is immutable reference data describing a diagnostic procedure.
type Exam struct {
	gorm.Model
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Type            ExamType `json:"type" gorm:"type:varchar(20);index"`
	Price           float64  `json:"price"`
	DurationMinutes int      `json:"duration_minutes"`
	Preparation     *string  `json:"preparation,omitempty"`
}
