package db

import (
	"log"

	"github.com/medibook/medibook-backend/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Exam{},
		&models.Laboratory{},
		&models.LaboratoryExam{},
		&models.Appointment{},
		&models.Payment{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// Slot uniqueness among non-canceled appointments. AutoMigrate cannot
	// express a partial index, so two bookers racing for the same slot are
	// stopped here rather than by the advisory availability query.
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot_active
		ON appointments (laboratory_exam_id, appointment_date, appointment_time)
		WHERE status NOT IN ('canceled') AND deleted_at IS NULL
	`).Error; err != nil {
		log.Fatal("Failed to create slot uniqueness index: ", err)
	}

	log.Println("Migrations applied successfully")
}
