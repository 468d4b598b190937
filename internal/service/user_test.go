package service

import (
	"errors"
	"testing"

	"cureon/internal/models"
)

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	if err := svc.CreateUser(&models.User{Username: "asha", Role: models.RolePatient}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	err := svc.CreateUser(&models.User{Username: "asha", Role: models.RoleDoctor})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate: got %v, want ErrUsernameTaken", err)
	}
}

func TestGetDoctorRejectsOtherRoles(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users)

	patient := &models.User{Username: "asha", Role: models.RolePatient}
	users.Create(patient)
	doctor := users.addDoctor("dr_rao")

	if _, err := svc.GetDoctor(doctor.ID); err != nil {
		t.Errorf("GetDoctor(doctor): %v", err)
	}
	if _, err := svc.GetDoctor(patient.ID); !errors.Is(err, ErrNotADoctor) {
		t.Errorf("GetDoctor(patient): got %v, want ErrNotADoctor", err)
	}
}
