package models

import (
	"gorm.io/gorm"
)

// Prescription is issued by a doctor against one of their appointments and
// later dispensed by a pharmacy, which decrements medicine stock.
type Prescription struct {
	gorm.Model
	AppointmentID uint               `gorm:"uniqueIndex;not null" json:"appointment_id"`
	DoctorID      uint               `gorm:"index;not null" json:"doctor_id"`
	PatientID     uint               `gorm:"index;not null" json:"patient_id"`
	Diagnosis     string             `json:"diagnosis"`
	Notes         string             `json:"notes"`
	Status        PrescriptionStatus `gorm:"not null" json:"status"`
	Items         []PrescriptionItem `gorm:"foreignKey:PrescriptionID" json:"items"`
}

// PrescriptionItem is one prescribed medicine with dosage instructions.
type PrescriptionItem struct {
	gorm.Model
	PrescriptionID uint   `gorm:"index;not null" json:"prescription_id"`
	MedicineID     uint   `gorm:"not null" json:"medicine_id"`
	Dosage         string `json:"dosage"`   // e.g. "1-0-1"
	Duration       string `json:"duration"` // e.g. "5 days"
	Quantity       int    `gorm:"not null" json:"quantity"`
}

// PrescriptionStatus defines the prescription lifecycle states
type PrescriptionStatus string

const (
	PrescriptionIssued    PrescriptionStatus = "issued"
	PrescriptionDispensed PrescriptionStatus = "dispensed"
)
