package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cureon/internal/service"
)

// DoctorHandler exposes doctor discovery for the booking flow.
type DoctorHandler struct {
	userService *service.UserService
}

func NewDoctorHandler(userService *service.UserService) *DoctorHandler {
	return &DoctorHandler{userService: userService}
}

func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.userService.GetDoctors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor id"})
		return
	}

	doctor, err := h.userService.GetDoctor(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
		return
	}
	c.JSON(http.StatusOK, doctor)
}
