package service

import (
	"errors"

	"gorm.io/gorm"

	"cureon/internal/models"
	"cureon/internal/repository"
)

var (
	ErrNotAppointmentDoctor = errors.New("appointment belongs to another doctor")
	ErrAppointmentCancelled = errors.New("cannot prescribe for a cancelled appointment")
	ErrAlreadyPrescribed    = errors.New("appointment already has a prescription")
	ErrEmptyPrescription    = errors.New("prescription must contain at least one item")
	ErrNotPrescriptionOwner = errors.New("prescription belongs to another user")
	ErrAlreadyDispensed     = errors.New("prescription is already dispensed")
)

// PrescriptionItemInput is one prescribed medicine line.
type PrescriptionItemInput struct {
	MedicineID uint   `json:"medicine_id" binding:"required"`
	Dosage     string `json:"dosage"`
	Duration   string `json:"duration"`
	Quantity   int    `json:"quantity" binding:"required"`
}

type PrescriptionService struct {
	prescriptionRepo repository.PrescriptionRepository
	apptRepo         repository.AppointmentRepository
}

func NewPrescriptionService(prescriptionRepo repository.PrescriptionRepository, apptRepo repository.AppointmentRepository) *PrescriptionService {
	return &PrescriptionService{
		prescriptionRepo: prescriptionRepo,
		apptRepo:         apptRepo,
	}
}

// Issue creates a prescription against one of the doctor's own appointments
// and marks the consultation completed. One prescription per appointment.
func (s *PrescriptionService) Issue(doctorID, apptID uint, diagnosis, notes string, items []PrescriptionItemInput) (*models.Prescription, error) {
	if len(items) == 0 {
		return nil, ErrEmptyPrescription
	}

	appt, err := s.apptRepo.FindByID(apptID)
	if err != nil {
		return nil, err
	}
	if appt.DoctorID != doctorID {
		return nil, ErrNotAppointmentDoctor
	}
	if appt.Status == models.AppointmentCancelled {
		return nil, ErrAppointmentCancelled
	}

	if _, err := s.prescriptionRepo.FindByAppointment(apptID); err == nil {
		return nil, ErrAlreadyPrescribed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	prescription := &models.Prescription{
		AppointmentID: apptID,
		DoctorID:      doctorID,
		PatientID:     appt.PatientID,
		Diagnosis:     diagnosis,
		Notes:         notes,
		Status:        models.PrescriptionIssued,
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		prescription.Items = append(prescription.Items, models.PrescriptionItem{
			MedicineID: item.MedicineID,
			Dosage:     item.Dosage,
			Duration:   item.Duration,
			Quantity:   item.Quantity,
		})
	}

	if err := s.prescriptionRepo.Create(prescription); err != nil {
		return nil, err
	}

	if appt.Status == models.AppointmentBooked {
		appt.Status = models.AppointmentCompleted
		if err := s.apptRepo.Update(appt); err != nil {
			return nil, err
		}
	}

	return prescription, nil
}

// Get returns the prescription for its patient, its doctor, or any pharmacy
// account (pharmacies need to read prescriptions to dispense them).
func (s *PrescriptionService) Get(prescriptionID, userID uint, role models.UserRole) (*models.Prescription, error) {
	prescription, err := s.prescriptionRepo.FindByID(prescriptionID)
	if err != nil {
		return nil, err
	}
	if role == models.RolePharmacy {
		return prescription, nil
	}
	if prescription.PatientID != userID && prescription.DoctorID != userID {
		return nil, ErrNotPrescriptionOwner
	}
	return prescription, nil
}

// ListForUser returns the caller's prescriptions, patient or doctor side.
func (s *PrescriptionService) ListForUser(userID uint, role models.UserRole) ([]models.Prescription, error) {
	switch role {
	case models.RolePatient:
		return s.prescriptionRepo.FindByPatient(userID)
	case models.RoleDoctor:
		return s.prescriptionRepo.FindByDoctor(userID)
	default:
		return nil, ErrUnknownUserRole
	}
}

// Dispense hands out the prescribed medicines, decrementing stock per item.
// A prescription can be dispensed only once.
func (s *PrescriptionService) Dispense(prescriptionID uint) (*models.Prescription, error) {
	prescription, err := s.prescriptionRepo.FindByID(prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription.Status != models.PrescriptionIssued {
		return nil, ErrAlreadyDispensed
	}

	if err := s.prescriptionRepo.Dispense(prescription); err != nil {
		return nil, err
	}
	prescription.Status = models.PrescriptionDispensed
	return prescription, nil
}
