package models

import (
	"gorm.io/gorm"
)

// Medicine is a catalog entry with live stock. Price is stored in the
// smallest currency unit (paise) to avoid floating point.
type Medicine struct {
	gorm.Model
	Name        string `gorm:"index;not null" json:"name"`
	Description string `json:"description"`
	Category    string `gorm:"index" json:"category"`
	Price       int    `gorm:"not null" json:"price"`
	Stock       int    `gorm:"not null" json:"stock"`
}
