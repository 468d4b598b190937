package repository

import (
	"gorm.io/gorm"

	"cureon/internal/models"
	"cureon/internal/storage"
)

type AppointmentRepository interface {
	CreateIfSlotFree(appt *models.Appointment) error
	FindByID(id uint) (*models.Appointment, error)
	Update(appt *models.Appointment) error
	FindByPatient(patientID uint) ([]models.Appointment, error)
	FindByDoctor(doctorID uint) ([]models.Appointment, error)
}

type appointmentRepository struct {
	db *storage.PostgresDB
}

func NewAppointmentRepository(db *storage.PostgresDB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// CreateIfSlotFree books the appointment only when the doctor has no other
// booked appointment at the same time. Check and insert run in one
// transaction so two concurrent bookings cannot both pass the check.
func (r *appointmentRepository) CreateIfSlotFree(appt *models.Appointment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Appointment{}).
			Where("doctor_id = ? AND scheduled_at = ? AND status = ?",
				appt.DoctorID, appt.ScheduledAt, models.AppointmentBooked).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotTaken
		}
		return tx.Create(appt).Error
	})
}

func (r *appointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.First(&appt, id).Error
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepository) Update(appt *models.Appointment) error {
	return r.db.Save(appt).Error
}

func (r *appointmentRepository) FindByPatient(patientID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("patient_id = ?", patientID).Order("scheduled_at DESC").Find(&appts).Error
	return appts, err
}

func (r *appointmentRepository) FindByDoctor(doctorID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("doctor_id = ?", doctorID).Order("scheduled_at DESC").Find(&appts).Error
	return appts, err
}
