package repository

import (
	"gorm.io/gorm"

	"cureon/internal/models"
	"cureon/internal/storage"
)

type PrescriptionRepository interface {
	Create(prescription *models.Prescription) error
	FindByID(id uint) (*models.Prescription, error)
	FindByAppointment(appointmentID uint) (*models.Prescription, error)
	FindByPatient(patientID uint) ([]models.Prescription, error)
	FindByDoctor(doctorID uint) ([]models.Prescription, error)
	Dispense(prescription *models.Prescription) error
}

type prescriptionRepository struct {
	db *storage.PostgresDB
}

func NewPrescriptionRepository(db *storage.PostgresDB) PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(prescription *models.Prescription) error {
	return r.db.Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(id uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.db.Preload("Items").First(&prescription, id).Error
	if err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByAppointment(appointmentID uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.db.Preload("Items").Where("appointment_id = ?", appointmentID).First(&prescription).Error
	if err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByPatient(patientID uint) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.Preload("Items").Where("patient_id = ?", patientID).
		Order("created_at DESC").Find(&prescriptions).Error
	return prescriptions, err
}

func (r *prescriptionRepository) FindByDoctor(doctorID uint) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.Preload("Items").Where("doctor_id = ?", doctorID).
		Order("created_at DESC").Find(&prescriptions).Error
	return prescriptions, err
}

// Dispense decrements stock for every prescribed item and marks the
// prescription dispensed, in one transaction. Any item with insufficient
// stock aborts the whole dispense.
func (r *prescriptionRepository) Dispense(prescription *models.Prescription) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range prescription.Items {
			var medicine models.Medicine
			if err := tx.First(&medicine, item.MedicineID).Error; err != nil {
				return err
			}
			if medicine.Stock < item.Quantity {
				return ErrInsufficientStock
			}
			medicine.Stock -= item.Quantity
			if err := tx.Save(&medicine).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Prescription{}).Where("id = ?", prescription.ID).
			Update("status", models.PrescriptionDispensed).Error
	})
}
