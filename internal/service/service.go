package service

import (
	"cureon/internal/repository"
	"cureon/internal/signaling"
)

type Services struct {
	User         *UserService
	Appointment  *AppointmentService
	Medicine     *MedicineService
	Order        *OrderService
	Prescription *PrescriptionService
	Relay        *signaling.Relay
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		User:         NewUserService(repos.User),
		Appointment:  NewAppointmentService(repos.Appointment, repos.User),
		Medicine:     NewMedicineService(repos.Medicine),
		Order:        NewOrderService(repos.Order),
		Prescription: NewPrescriptionService(repos.Prescription, repos.Appointment),
		Relay:        signaling.NewRelay(),
	}
}
