package models

import (
	"gorm.io/gorm"
)

// Order is a medicine purchase by a patient. Stock is decremented when the
// order is placed and restored if it is cancelled.
type Order struct {
	gorm.Model
	PatientID uint        `gorm:"index;not null" json:"patient_id"`
	Status    OrderStatus `gorm:"not null" json:"status"`
	Total     int         `gorm:"not null" json:"total"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem is one medicine line of an order. UnitPrice is the catalog price
// at placement time, so later price changes do not rewrite history.
type OrderItem struct {
	gorm.Model
	OrderID    uint `gorm:"index;not null" json:"order_id"`
	MedicineID uint `gorm:"not null" json:"medicine_id"`
	Quantity   int  `gorm:"not null" json:"quantity"`
	UnitPrice  int  `gorm:"not null" json:"unit_price"`
}

// OrderStatus defines the order lifecycle states
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderCancelled OrderStatus = "cancelled"
	OrderDelivered OrderStatus = "delivered"
)
