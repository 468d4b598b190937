package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment represents a booked consultation slot between a patient and a
// doctor. RoomToken is the signaling room both sides join for the video call.
type Appointment struct {
	gorm.Model
	PatientID   uint              `gorm:"index;not null" json:"patient_id"`
	DoctorID    uint              `gorm:"index;not null" json:"doctor_id"`
	ScheduledAt time.Time         `gorm:"not null" json:"scheduled_at"`
	Status      AppointmentStatus `gorm:"not null" json:"status"`
	Symptoms    string            `json:"symptoms"`
	RoomToken   string            `gorm:"uniqueIndex" json:"room_token"`
}

// AppointmentStatus defines the appointment lifecycle states
type AppointmentStatus string

const (
	AppointmentBooked    AppointmentStatus = "booked"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)
