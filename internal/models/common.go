// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the ID client-side so inserts behave the same on
// Postgres and the in-memory test database.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Enums
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusApproved ProductStatus = "approved"
)

type ProductCategory string

const (
	ProductCategoryTemplate ProductCategory = "template"
	ProductCategoryPreset   ProductCategory = "preset"
	ProductCategoryEbook    ProductCategory = "ebook"
	ProductCategoryWebsite  ProductCategory = "website"
	ProductCategoryOther    ProductCategory = "other"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case ProductCategoryTemplate, ProductCategoryPreset, ProductCategoryEbook,
		ProductCategoryWebsite, ProductCategoryOther:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPaid    OrderStatus = "paid"
)
