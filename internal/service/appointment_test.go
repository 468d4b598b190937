package service

import (
	"errors"
	"testing"
	"time"

	"cureon/internal/models"
	"cureon/internal/repository"
)

func newAppointmentFixture() (*AppointmentService, *fakeUserRepo, *fakeAppointmentRepo) {
	users := newFakeUserRepo()
	appts := newFakeAppointmentRepo()
	return NewAppointmentService(appts, users), users, appts
}

func TestBookAssignsRoomToken(t *testing.T) {
	svc, users, _ := newAppointmentFixture()
	doctor := users.addDoctor("dr_rao")
	slot := time.Now().Add(24 * time.Hour)

	appt, err := svc.Book(42, doctor.ID, slot, "fever")
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if appt.Status != models.AppointmentBooked {
		t.Errorf("status = %q, want %q", appt.Status, models.AppointmentBooked)
	}
	if appt.RoomToken == "" {
		t.Error("expected a room token to be assigned")
	}
}

func TestBookRejectsTakenSlot(t *testing.T) {
	svc, users, _ := newAppointmentFixture()
	doctor := users.addDoctor("dr_rao")
	slot := time.Now().Add(24 * time.Hour)

	if _, err := svc.Book(1, doctor.ID, slot, ""); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := svc.Book(2, doctor.ID, slot, ""); !errors.Is(err, repository.ErrSlotTaken) {
		t.Fatalf("second booking: got %v, want ErrSlotTaken", err)
	}

	// A different slot with the same doctor is still free
	if _, err := svc.Book(2, doctor.ID, slot.Add(time.Hour), ""); err != nil {
		t.Fatalf("different slot: %v", err)
	}
}

func TestBookCancelledSlotIsFreeAgain(t *testing.T) {
	svc, users, _ := newAppointmentFixture()
	doctor := users.addDoctor("dr_rao")
	slot := time.Now().Add(24 * time.Hour)

	appt, err := svc.Book(1, doctor.ID, slot, "")
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if err := svc.Cancel(appt.ID, 1); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if _, err := svc.Book(2, doctor.ID, slot, ""); err != nil {
		t.Fatalf("rebooking cancelled slot: %v", err)
	}
}

func TestBookValidation(t *testing.T) {
	svc, users, _ := newAppointmentFixture()
	doctor := users.addDoctor("dr_rao")
	patient := &models.User{Username: "asha", Role: models.RolePatient}
	users.Create(patient)

	tests := []struct {
		name     string
		doctorID uint
		at       time.Time
		wantErr  error
	}{
		{"past slot", doctor.ID, time.Now().Add(-time.Hour), ErrSlotInPast},
		{"not a doctor", patient.ID, time.Now().Add(time.Hour), ErrNotADoctor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Book(1, tt.doctorID, tt.at, ""); !errors.Is(err, tt.wantErr) {
				t.Errorf("Book: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCancelAuthorization(t *testing.T) {
	svc, users, _ := newAppointmentFixture()
	doctor := users.addDoctor("dr_rao")
	appt, err := svc.Book(1, doctor.ID, time.Now().Add(time.Hour), "")
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	if err := svc.Cancel(appt.ID, 99); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("stranger cancel: got %v, want ErrNotParticipant", err)
	}
	if err := svc.Cancel(appt.ID, doctor.ID); err != nil {
		t.Errorf("doctor cancel: %v", err)
	}
	if err := svc.Cancel(appt.ID, doctor.ID); !errors.Is(err, ErrNotBooked) {
		t.Errorf("double cancel: got %v, want ErrNotBooked", err)
	}
}

func TestCompleteDoctorOnly(t *testing.T) {
	svc, users, _ := newAppointmentFixture()
	doctor := users.addDoctor("dr_rao")
	appt, err := svc.Book(1, doctor.ID, time.Now().Add(time.Hour), "")
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	if err := svc.Complete(appt.ID, 1); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("patient complete: got %v, want ErrNotParticipant", err)
	}
	if err := svc.Complete(appt.ID, doctor.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	got, err := svc.Get(appt.ID, doctor.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != models.AppointmentCompleted {
		t.Errorf("status = %q, want %q", got.Status, models.AppointmentCompleted)
	}
}
