package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cureon/internal/models"
	"cureon/internal/service"
)

// MedicineHandler handles the medicine catalog and pharmacy stock updates.
type MedicineHandler struct {
	medicineService *service.MedicineService
}

func NewMedicineHandler(medicineService *service.MedicineService) *MedicineHandler {
	return &MedicineHandler{medicineService: medicineService}
}

// List returns the catalog, filtered by optional name and category query
// parameters.
func (h *MedicineHandler) List(c *gin.Context) {
	medicines, err := h.medicineService.ListMedicines(c.Query("name"), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list medicines"})
		return
	}
	c.JSON(http.StatusOK, medicines)
}

func (h *MedicineHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medicine id"})
		return
	}

	medicine, err := h.medicineService.GetMedicine(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, medicine)
}

type CreateMedicineInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int    `json:"price" binding:"required"`
	Stock       int    `json:"stock"`
}

// Create adds a catalog entry. Pharmacy only.
func (h *MedicineHandler) Create(c *gin.Context) {
	var input CreateMedicineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	medicine := models.Medicine{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
	}
	if err := h.medicineService.AddMedicine(&medicine); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, medicine)
}

// Restock adds quantity to a medicine's stock. Pharmacy only.
func (h *MedicineHandler) Restock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medicine id"})
		return
	}

	var input struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	medicine, err := h.medicineService.Restock(uint(id), input.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, medicine)
}

// SetPrice updates a medicine's catalog price. Pharmacy only.
func (h *MedicineHandler) SetPrice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medicine id"})
		return
	}

	var input struct {
		Price int `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	medicine, err := h.medicineService.SetPrice(uint(id), input.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, medicine)
}
