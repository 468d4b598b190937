package repository

import (
	"cureon/internal/models"
	"cureon/internal/storage"
)

type MedicineRepository interface {
	Create(medicine *models.Medicine) error
	FindByID(id uint) (*models.Medicine, error)
	Update(medicine *models.Medicine) error
	FindAll(name, category string) ([]models.Medicine, error)
}

type medicineRepository struct {
	db *storage.PostgresDB
}

func NewMedicineRepository(db *storage.PostgresDB) MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) Create(medicine *models.Medicine) error {
	return r.db.Create(medicine).Error
}

func (r *medicineRepository) FindByID(id uint) (*models.Medicine, error) {
	var medicine models.Medicine
	err := r.db.First(&medicine, id).Error
	if err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) Update(medicine *models.Medicine) error {
	return r.db.Save(medicine).Error
}

// FindAll lists the catalog, optionally filtered by name substring and
// exact category.
func (r *medicineRepository) FindAll(name, category string) ([]models.Medicine, error) {
	query := r.db.DB
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var medicines []models.Medicine
	err := query.Order("name ASC").Find(&medicines).Error
	return medicines, err
}
