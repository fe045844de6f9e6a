// internal/models/product.go
package models

import (
	"github.com/google/uuid"
)

type Product struct {
	BaseModel
	UserID      uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       float64         `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    ProductCategory `json:"category" gorm:"type:varchar(20);index"`
	Image       string          `json:"image" gorm:"size:512;not null"`
	File        string          `json:"file" gorm:"size:512;not null"`
	Status      ProductStatus   `json:"status" gorm:"type:varchar(20);default:'pending';index"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
