package repository

import (
	"gorm.io/gorm"

	"cureon/internal/models"
	"cureon/internal/storage"
)

type OrderRepository interface {
	Place(order *models.Order) error
	FindByID(id uint) (*models.Order, error)
	FindByPatient(patientID uint) ([]models.Order, error)
	CancelRestock(order *models.Order) error
	UpdateStatus(id uint, status models.OrderStatus) error
}

type orderRepository struct {
	db *storage.PostgresDB
}

func NewOrderRepository(db *storage.PostgresDB) OrderRepository {
	return &orderRepository{db: db}
}

// Place creates the order and decrements stock for every item inside one
// transaction. Unit prices and the total are taken from the catalog at
// placement time. Any item with insufficient stock aborts the whole order.
func (r *orderRepository) Place(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		total := 0
		for i := range order.Items {
			item := &order.Items[i]

			var medicine models.Medicine
			if err := tx.First(&medicine, item.MedicineID).Error; err != nil {
				return err
			}
			if medicine.Stock < item.Quantity {
				return ErrInsufficientStock
			}

			medicine.Stock -= item.Quantity
			if err := tx.Save(&medicine).Error; err != nil {
				return err
			}

			item.UnitPrice = medicine.Price
			total += medicine.Price * item.Quantity
		}

		order.Total = total
		order.Status = models.OrderPlaced
		return tx.Create(order).Error
	})
}

func (r *orderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByPatient(patientID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("patient_id = ?", patientID).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// CancelRestock returns every item's quantity to stock and marks the order
// cancelled, in one transaction.
func (r *orderRepository) CancelRestock(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			err := tx.Model(&models.Medicine{}).Where("id = ?", item.MedicineID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error
			if err != nil {
				return err
			}
		}
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", models.OrderCancelled).Error
	})
}

func (r *orderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}
