package service

import (
	"errors"

	"cureon/internal/models"
	"cureon/internal/repository"
)

var (
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

type MedicineService struct {
	medicineRepo repository.MedicineRepository
}

func NewMedicineService(medicineRepo repository.MedicineRepository) *MedicineService {
	return &MedicineService{medicineRepo: medicineRepo}
}

func (s *MedicineService) AddMedicine(medicine *models.Medicine) error {
	if medicine.Price <= 0 {
		return ErrInvalidPrice
	}
	if medicine.Stock < 0 {
		return ErrInvalidQuantity
	}
	return s.medicineRepo.Create(medicine)
}

func (s *MedicineService) GetMedicine(id uint) (*models.Medicine, error) {
	return s.medicineRepo.FindByID(id)
}

// ListMedicines returns the catalog, optionally filtered by name substring
// and category.
func (s *MedicineService) ListMedicines(name, category string) ([]models.Medicine, error) {
	return s.medicineRepo.FindAll(name, category)
}

// Restock adds quantity to a medicine's stock.
func (s *MedicineService) Restock(id uint, quantity int) (*models.Medicine, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	medicine, err := s.medicineRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	medicine.Stock += quantity
	if err := s.medicineRepo.Update(medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

// SetPrice updates a medicine's catalog price.
func (s *MedicineService) SetPrice(id uint, price int) (*models.Medicine, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	medicine, err := s.medicineRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	medicine.Price = price
	if err := s.medicineRepo.Update(medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}
