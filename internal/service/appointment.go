package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"cureon/internal/models"
	"cureon/internal/repository"
)

var (
	ErrSlotInPast      = errors.New("appointment slot must be in the future")
	ErrNotParticipant  = errors.New("user is not part of this appointment")
	ErrNotBooked       = errors.New("appointment is not in booked state")
	ErrUnknownUserRole = errors.New("unknown user role")
)

type AppointmentService struct {
	apptRepo repository.AppointmentRepository
	userRepo repository.UserRepository
}

func NewAppointmentService(apptRepo repository.AppointmentRepository, userRepo repository.UserRepository) *AppointmentService {
	return &AppointmentService{apptRepo: apptRepo, userRepo: userRepo}
}

// Book reserves a consultation slot with the given doctor. The room token
// assigned here is the signaling room both sides join for the video call.
func (s *AppointmentService) Book(patientID, doctorID uint, at time.Time, symptoms string) (*models.Appointment, error) {
	doctor, err := s.userRepo.FindByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor.Role != models.RoleDoctor {
		return nil, ErrNotADoctor
	}
	if !at.After(time.Now()) {
		return nil, ErrSlotInPast
	}

	appt := &models.Appointment{
		PatientID:   patientID,
		DoctorID:    doctorID,
		ScheduledAt: at,
		Status:      models.AppointmentBooked,
		Symptoms:    symptoms,
		RoomToken:   uuid.NewString(),
	}

	if err := s.apptRepo.CreateIfSlotFree(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Get returns the appointment, visible only to its patient or doctor.
func (s *AppointmentService) Get(apptID, userID uint) (*models.Appointment, error) {
	appt, err := s.apptRepo.FindByID(apptID)
	if err != nil {
		return nil, err
	}
	if appt.PatientID != userID && appt.DoctorID != userID {
		return nil, ErrNotParticipant
	}
	return appt, nil
}

// Cancel frees the slot. Either side of the appointment may cancel while it
// is still booked; a cancelled slot can be booked again.
func (s *AppointmentService) Cancel(apptID, userID uint) error {
	appt, err := s.apptRepo.FindByID(apptID)
	if err != nil {
		return err
	}
	if appt.PatientID != userID && appt.DoctorID != userID {
		return ErrNotParticipant
	}
	if appt.Status != models.AppointmentBooked {
		return ErrNotBooked
	}

	appt.Status = models.AppointmentCancelled
	return s.apptRepo.Update(appt)
}

// Complete marks a consultation as done. Only the doctor may complete it.
func (s *AppointmentService) Complete(apptID, doctorID uint) error {
	appt, err := s.apptRepo.FindByID(apptID)
	if err != nil {
		return err
	}
	if appt.DoctorID != doctorID {
		return ErrNotParticipant
	}
	if appt.Status != models.AppointmentBooked {
		return ErrNotBooked
	}

	appt.Status = models.AppointmentCompleted
	return s.apptRepo.Update(appt)
}

// ListForUser returns the caller's own appointments, patient or doctor side.
func (s *AppointmentService) ListForUser(userID uint, role models.UserRole) ([]models.Appointment, error) {
	switch role {
	case models.RolePatient:
		return s.apptRepo.FindByPatient(userID)
	case models.RoleDoctor:
		return s.apptRepo.FindByDoctor(userID)
	default:
		return nil, ErrUnknownUserRole
	}
}
