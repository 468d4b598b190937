package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cureon/internal/repository"
	"cureon/internal/service"
)

// respondError maps service and repository errors onto HTTP status codes.
// Anything unmapped is a plain 400 with the error text.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, service.ErrNotParticipant),
		errors.Is(err, service.ErrNotOrderOwner),
		errors.Is(err, service.ErrNotPrescriptionOwner),
		errors.Is(err, service.ErrNotAppointmentDoctor):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrSlotTaken),
		errors.Is(err, repository.ErrInsufficientStock),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrAlreadyPrescribed),
		errors.Is(err, service.ErrAlreadyDispensed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
