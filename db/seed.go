package db

import (
	"log"

	"github.com/medibook/medibook-backend/models"
)

func strPtr(s string) *string { return &s }

// Seed inserts the exam and laboratory reference data if it is not present.
// Safe to call on every boot.
func Seed() {
	exams := []models.Exam{
		{Name: "Blood Test", Type: models.ExamBloodTest, Price: 50, DurationMinutes: 15,
			Description: "Comprehensive blood analysis to assess overall health and detect abnormalities.",
			Preparation: strPtr("Fast for 8 hours before the exam.")},
		{Name: "X-Ray", Type: models.ExamXRay, Price: 80, DurationMinutes: 20,
			Description: "Quick and efficient diagnostic imaging for bones and chest examinations."},
		{Name: "MRI Scan", Type: models.ExamMRI, Price: 400, DurationMinutes: 45,
			Description: "High-resolution magnetic resonance imaging for detailed internal body examination.",
			Preparation: strPtr("Remove all metal objects. Inform staff of any implants.")},
		{Name: "CT Scan", Type: models.ExamCTScan, Price: 300, DurationMinutes: 30,
			Description: "Advanced computed tomography scanning for cross-sectional body imaging."},
		{Name: "Ultrasound", Type: models.ExamUltrasound, Price: 120, DurationMinutes: 30,
			Description: "Non-invasive imaging technique using sound waves to visualize internal organs."},
		{Name: "Endoscopy", Type: models.ExamEndoscopy, Price: 250, DurationMinutes: 40,
			Description: "Examination of internal organs using a flexible tube with a camera.",
			Preparation: strPtr("Fast for 12 hours before the exam.")},
		{Name: "Colonoscopy", Type: models.ExamColonoscopy, Price: 350, DurationMinutes: 60,
			Description: "Examination of the colon and large intestine using a flexible tube with a camera.",
			Preparation: strPtr("Follow the bowel preparation instructions provided by the laboratory.")},
		{Name: "Mammogram", Type: models.ExamMammogram, Price: 150, DurationMinutes: 25,
			Description: "X-ray imaging of the breast to detect early signs of breast cancer."},
		{Name: "Other Exam", Type: models.ExamOther, Price: 100, DurationMinutes: 30,
			Description: "Specialized diagnostic procedure tailored to specific medical needs."},
	}

	for i := range exams {
		var existing models.Exam
		if DB.Where("name = ?", exams[i].Name).First(&existing).RowsAffected == 0 {
			if err := DB.Create(&exams[i]).Error; err != nil {
				log.Printf("Failed to seed exam %s: %v", exams[i].Name, err)
			}
		} else {
			exams[i] = existing
		}
	}

	labs := []models.Laboratory{
		{Name: "Acme Labs", Address: "123 Main St", City: "Springfield", State: "IL",
			Phone: "+1 555 0101", Email: "contact@acmelabs.example"},
		{Name: "Central Diagnostics", Address: "45 Elm Ave", City: "Springfield", State: "IL",
			Phone: "+1 555 0102", Email: "info@centraldiag.example"},
		{Name: "Lakeside Imaging", Address: "9 Harbor Rd", City: "Chicago", State: "IL",
			Phone: "+1 555 0103", Email: "hello@lakesideimaging.example"},
		{Name: "Riverside Medical Center", Address: "78 River St", City: "Peoria", State: "IL",
			Phone: "+1 555 0104", Email: "contact@riversidemed.example"},
	}

	for i := range labs {
		var existing models.Laboratory
		if DB.Where("name = ?", labs[i].Name).First(&existing).RowsAffected == 0 {
			if err := DB.Create(&labs[i]).Error; err != nil {
				log.Printf("Failed to seed laboratory %s: %v", labs[i].Name, err)
			}
		} else {
			labs[i] = existing
		}
	}

	// Every lab offers every exam except the imaging-only labs, which skip the
	// scope procedures.
	for _, lab := range labs {
		for _, exam := range exams {
			if lab.Name == "Lakeside Imaging" &&
				(exam.Type == models.ExamEndoscopy || exam.Type == models.ExamColonoscopy) {
				continue
			}
			var existing models.LaboratoryExam
			if DB.Where("laboratory_id = ? AND exam_id = ?", lab.ID, exam.ID).
				First(&existing).RowsAffected == 0 {
				pairing := models.LaboratoryExam{
					LaboratoryID:         lab.ID,
					ExamID:               exam.ID,
					AvailableSlotsPerDay: len(models.TimeSlots),
				}
				if err := DB.Create(&pairing).Error; err != nil {
					log.Printf("Failed to seed pairing %s/%s: %v", lab.Name, exam.Name, err)
				}
			}
		}
	}

	log.Println("Reference data seeded")
}
