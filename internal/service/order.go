package service

import (
	"errors"

	"cureon/internal/models"
	"cureon/internal/repository"
)

var (
	ErrEmptyOrder     = errors.New("order must contain at least one item")
	ErrNotOrderOwner  = errors.New("order belongs to another user")
	ErrOrderNotPlaced = errors.New("order is not in placed state")
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	MedicineID uint `json:"medicine_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

type OrderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// Place creates an order for the patient. Stock is checked and decremented
// per item; insufficient stock on any item rejects the whole order.
func (s *OrderService) Place(patientID uint, items []OrderItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	order := &models.Order{PatientID: patientID}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		order.Items = append(order.Items, models.OrderItem{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
		})
	}

	if err := s.orderRepo.Place(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Get returns the order, visible only to the patient who placed it.
func (s *OrderService) Get(orderID, patientID uint) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.PatientID != patientID {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

func (s *OrderService) ListForPatient(patientID uint) ([]models.Order, error) {
	return s.orderRepo.FindByPatient(patientID)
}

// Cancel restocks every item and marks the order cancelled. Only the owning
// patient may cancel, and only while the order is still placed.
func (s *OrderService) Cancel(orderID, patientID uint) error {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return err
	}
	if order.PatientID != patientID {
		return ErrNotOrderOwner
	}
	if order.Status != models.OrderPlaced {
		return ErrOrderNotPlaced
	}
	return s.orderRepo.CancelRestock(order)
}

// MarkDelivered is the pharmacy-side completion of an order.
func (s *OrderService) MarkDelivered(orderID uint) error {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return err
	}
	if order.Status != models.OrderPlaced {
		return ErrOrderNotPlaced
	}
	return s.orderRepo.UpdateStatus(orderID, models.OrderDelivered)
}
