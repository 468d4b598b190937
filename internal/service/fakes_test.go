package service

import (
	"gorm.io/gorm"

	"cureon/internal/models"
	"cureon/internal/repository"
)

// In-memory repository fakes. They mirror the gorm-backed implementations'
// contracts, including gorm.ErrRecordNotFound on misses and the consistency
// rules of the transactional operations.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindDoctors() ([]models.User, error) {
	var doctors []models.User
	for _, u := range f.users {
		if u.Role == models.RoleDoctor {
			doctors = append(doctors, *u)
		}
	}
	return doctors, nil
}

func (f *fakeUserRepo) addDoctor(name string) *models.User {
	doctor := &models.User{Username: name, Role: models.RoleDoctor, FullName: name}
	f.Create(doctor)
	return doctor
}

type fakeAppointmentRepo struct {
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uint]*models.Appointment), nextID: 1}
}

func (f *fakeAppointmentRepo) CreateIfSlotFree(appt *models.Appointment) error {
	for _, existing := range f.appointments {
		if existing.DoctorID == appt.DoctorID &&
			existing.ScheduledAt.Equal(appt.ScheduledAt) &&
			existing.Status == models.AppointmentBooked {
			return repository.ErrSlotTaken
		}
	}
	appt.ID = f.nextID
	f.nextID++
	stored := *appt
	f.appointments[appt.ID] = &stored
	return nil
}

func (f *fakeAppointmentRepo) FindByID(id uint) (*models.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) Update(appt *models.Appointment) error {
	stored := *appt
	f.appointments[appt.ID] = &stored
	return nil
}

func (f *fakeAppointmentRepo) FindByPatient(patientID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			appts = append(appts, *a)
		}
	}
	return appts, nil
}

func (f *fakeAppointmentRepo) FindByDoctor(doctorID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID {
			appts = append(appts, *a)
		}
	}
	return appts, nil
}

type fakeMedicineRepo struct {
	medicines map[uint]*models.Medicine
	nextID    uint
}

func newFakeMedicineRepo() *fakeMedicineRepo {
	return &fakeMedicineRepo{medicines: make(map[uint]*models.Medicine), nextID: 1}
}

func (f *fakeMedicineRepo) Create(medicine *models.Medicine) error {
	medicine.ID = f.nextID
	f.nextID++
	stored := *medicine
	f.medicines[medicine.ID] = &stored
	return nil
}

func (f *fakeMedicineRepo) FindByID(id uint) (*models.Medicine, error) {
	m, ok := f.medicines[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMedicineRepo) Update(medicine *models.Medicine) error {
	stored := *medicine
	f.medicines[medicine.ID] = &stored
	return nil
}

func (f *fakeMedicineRepo) FindAll(name, category string) ([]models.Medicine, error) {
	var all []models.Medicine
	for _, m := range f.medicines {
		all = append(all, *m)
	}
	return all, nil
}

func (f *fakeMedicineRepo) stock(id uint) int {
	return f.medicines[id].Stock
}

// fakeOrderRepo shares the medicine fake so stock movements are observable.
type fakeOrderRepo struct {
	orders    map[uint]*models.Order
	medicines *fakeMedicineRepo
	nextID    uint
}

func newFakeOrderRepo(medicines *fakeMedicineRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*models.Order), medicines: medicines, nextID: 1}
}

func (f *fakeOrderRepo) Place(order *models.Order) error {
	// All-or-nothing, like the real transaction
	for _, item := range order.Items {
		m, ok := f.medicines.medicines[item.MedicineID]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		if m.Stock < item.Quantity {
			return repository.ErrInsufficientStock
		}
	}

	total := 0
	for i := range order.Items {
		item := &order.Items[i]
		m := f.medicines.medicines[item.MedicineID]
		m.Stock -= item.Quantity
		item.UnitPrice = m.Price
		total += m.Price * item.Quantity
	}

	order.Total = total
	order.Status = models.OrderPlaced
	order.ID = f.nextID
	f.nextID++
	stored := *order
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeOrderRepo) FindByID(id uint) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) FindByPatient(patientID uint) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range f.orders {
		if o.PatientID == patientID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) CancelRestock(order *models.Order) error {
	for _, item := range order.Items {
		f.medicines.medicines[item.MedicineID].Stock += item.Quantity
	}
	f.orders[order.ID].Status = models.OrderCancelled
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(id uint, status models.OrderStatus) error {
	order, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	return nil
}

// fakePrescriptionRepo also shares the medicine fake.
type fakePrescriptionRepo struct {
	prescriptions map[uint]*models.Prescription
	medicines     *fakeMedicineRepo
	nextID        uint
}

func newFakePrescriptionRepo(medicines *fakeMedicineRepo) *fakePrescriptionRepo {
	return &fakePrescriptionRepo{prescriptions: make(map[uint]*models.Prescription), medicines: medicines, nextID: 1}
}

func (f *fakePrescriptionRepo) Create(prescription *models.Prescription) error {
	prescription.ID = f.nextID
	f.nextID++
	stored := *prescription
	f.prescriptions[prescription.ID] = &stored
	return nil
}

func (f *fakePrescriptionRepo) FindByID(id uint) (*models.Prescription, error) {
	p, ok := f.prescriptions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePrescriptionRepo) FindByAppointment(appointmentID uint) (*models.Prescription, error) {
	for _, p := range f.prescriptions {
		if p.AppointmentID == appointmentID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePrescriptionRepo) FindByPatient(patientID uint) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	for _, p := range f.prescriptions {
		if p.PatientID == patientID {
			prescriptions = append(prescriptions, *p)
		}
	}
	return prescriptions, nil
}

func (f *fakePrescriptionRepo) FindByDoctor(doctorID uint) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	for _, p := range f.prescriptions {
		if p.DoctorID == doctorID {
			prescriptions = append(prescriptions, *p)
		}
	}
	return prescriptions, nil
}

func (f *fakePrescriptionRepo) Dispense(prescription *models.Prescription) error {
	for _, item := range prescription.Items {
		m, ok := f.medicines.medicines[item.MedicineID]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		if m.Stock < item.Quantity {
			return repository.ErrInsufficientStock
		}
	}
	for _, item := range prescription.Items {
		f.medicines.medicines[item.MedicineID].Stock -= item.Quantity
	}
	f.prescriptions[prescription.ID].Status = models.PrescriptionDispensed
	return nil
}
