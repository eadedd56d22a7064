package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"unique;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"type:decimal(12,2);not null"`
	Stock       int            `json:"stock" gorm:"not null;default:0"`
	Category    string         `json:"category" gorm:"default:'OTHER'"` // FOOD, DRINK, SNACK, SERVICE, OTHER
	ImageURL    string         `json:"image_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type ProductCategory string

const (
	CategoryFood    ProductCategory = "FOOD"
	CategoryDrink   ProductCategory = "DRINK"
	CategorySnack   ProductCategory = "SNACK"
	CategoryService ProductCategory = "SERVICE"
	CategoryOther   ProductCategory = "OTHER"
)

func ValidCategory(category string) bool {
	switch ProductCategory(category) {
	case CategoryFood, CategoryDrink, CategorySnack, CategoryService, CategoryOther:
		return true
	}
	return false
}
