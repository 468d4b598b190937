package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cureon/internal/models"
	"cureon/internal/service"
)

// PrescriptionHandler handles prescription issuance and dispensing.
type PrescriptionHandler struct {
	prescriptionService *service.PrescriptionService
}

func NewPrescriptionHandler(prescriptionService *service.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptionService: prescriptionService}
}

type IssuePrescriptionInput struct {
	AppointmentID uint                            `json:"appointment_id" binding:"required"`
	Diagnosis     string                          `json:"diagnosis"`
	Notes         string                          `json:"notes"`
	Items         []service.PrescriptionItemInput `json:"items" binding:"required"`
}

// Issue creates a prescription for one of the doctor's appointments.
// Doctor only.
func (h *PrescriptionHandler) Issue(c *gin.Context) {
	var input IssuePrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prescription, err := h.prescriptionService.Issue(
		c.GetUint("userID"), input.AppointmentID, input.Diagnosis, input.Notes, input.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prescription)
}

func (h *PrescriptionHandler) Get(c *gin.Context) {
	prescriptionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prescription id"})
		return
	}

	role := models.UserRole(c.GetString("userRole"))
	prescription, err := h.prescriptionService.Get(uint(prescriptionID), c.GetUint("userID"), role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescription)
}

func (h *PrescriptionHandler) List(c *gin.Context) {
	role := models.UserRole(c.GetString("userRole"))
	prescriptions, err := h.prescriptionService.ListForUser(c.GetUint("userID"), role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

// Dispense hands out the prescribed medicines, decrementing stock.
// Pharmacy only.
func (h *PrescriptionHandler) Dispense(c *gin.Context) {
	prescriptionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prescription id"})
		return
	}

	prescription, err := h.prescriptionService.Dispense(uint(prescriptionID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescription)
}
