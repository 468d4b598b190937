package repository

import (
	"errors"

	"cureon/internal/storage"
)

// Domain errors surfaced by the consistency-checked operations.
var (
	ErrSlotTaken         = errors.New("doctor already has an appointment at this slot")
	ErrInsufficientStock = errors.New("insufficient medicine stock")
)

type Repositories struct {
	User         UserRepository
	Appointment  AppointmentRepository
	Medicine     MedicineRepository
	Order        OrderRepository
	Prescription PrescriptionRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Appointment:  NewAppointmentRepository(db),
		Medicine:     NewMedicineRepository(db),
		Order:        NewOrderRepository(db),
		Prescription: NewPrescriptionRepository(db),
	}
}
