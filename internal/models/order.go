// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

// Order keeps a snapshot of the product title and listed price taken at
// creation time, so deleting a product never corrupts order history.
type Order struct {
	BaseModel
	ProductID    uuid.UUID   `json:"product_id" gorm:"type:uuid;not null;index"`
	BuyerID      uuid.UUID   `json:"buyer_id" gorm:"type:uuid;not null;index"`
	Amount       float64     `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status       OrderStatus `json:"status" gorm:"type:varchar(20);default:'created';index"`
	ProductTitle string      `json:"product_title" gorm:"size:255"`
	ProductPrice float64     `json:"product_price" gorm:"type:decimal(10,2)"`

	// Relationships
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Buyer   User     `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
}
