package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cureon/internal/models"
	"cureon/internal/service"
)

// AppointmentHandler handles consultation booking and lifecycle.
type AppointmentHandler struct {
	apptService *service.AppointmentService
}

func NewAppointmentHandler(apptService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{apptService: apptService}
}

type BookAppointmentInput struct {
	DoctorID    uint      `json:"doctor_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Symptoms    string    `json:"symptoms"`
}

// Book reserves a slot with a doctor. The response carries the room token
// used by both sides to join the signaling room for the video call.
func (h *AppointmentHandler) Book(c *gin.Context) {
	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	appt, err := h.apptService.Book(userID, input.DoctorID, input.ScheduledAt, input.Symptoms)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	apptID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	appt, err := h.apptService.Get(uint(apptID), c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// List returns the caller's own appointments, patient or doctor side.
func (h *AppointmentHandler) List(c *gin.Context) {
	role := models.UserRole(c.GetString("userRole"))
	appts, err := h.apptService.ListForUser(c.GetUint("userID"), role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	apptID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	if err := h.apptService.Cancel(uint(apptID), c.GetUint("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	apptID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	if err := h.apptService.Complete(uint(apptID), c.GetUint("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment completed"})
}
