// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/digibay/digibay-backend/internal/apperrors"
	"github.com/digibay/digibay-backend/internal/authz"
	"github.com/digibay/digibay-backend/internal/models"
	"github.com/digibay/digibay-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

type CreateProductRequest struct {
	Title       string                 `json:"title" validate:"required,min=3,max=255"`
	Description string                 `json:"description"`
	Price       float64                `json:"price" validate:"gte=0"`
	Category    models.ProductCategory `json:"category" validate:"required"`
	Image       string                 `json:"image"`
	File        string                 `json:"file"`
}

type UpdateProductRequest struct {
	Title       string                 `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description *string                `json:"description,omitempty"`
	Price       *float64               `json:"price,omitempty" validate:"omitempty,gte=0"`
	Category    models.ProductCategory `json:"category,omitempty"`
}

// ProductFilter is the composed listing filter. StatusAll is only honored for
// admin callers; everyone else sees approved products regardless.
type ProductFilter struct {
	Category  models.ProductCategory
	OwnerID   *uuid.UUID
	StatusAll bool
}

type ProductPage struct {
	Products []models.Product
	Total    int64
	Page     int
	Pages    int
}

func (s *ProductService) Create(ownerID uuid.UUID, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validationf("%s", utils.ValidationMessages(err))
	}

	if req.Image == "" || req.File == "" {
		return nil, apperrors.Validationf("please upload image and file")
	}

	if !req.Category.Valid() {
		return nil, apperrors.Validationf("unknown category %q", req.Category)
	}

	// Status is forced to pending no matter what the caller supplied.
	product := &models.Product{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		File:        req.File,
		Status:      models.ProductStatusPending,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.db.Preload("User").First(product, product.ID)

	return product, nil
}

func (s *ProductService) Get(id uuid.UUID) (*models.Product, error) {
	// The detail view is intentionally public, pending products included;
	// non-admins simply cannot discover them via listing.
	var product models.Product
	if err := s.db.Preload("User").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("product %s not found", id)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (s *ProductService) Update(id uuid.UUID, caller authz.Caller, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validationf("%s", utils.ValidationMessages(err))
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("product %s not found", id)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := authz.Authorize(authz.ActionProductUpdate, caller, product.UserID); err != nil {
		return nil, err
	}

	// Only listing fields are mutable; status and ownership never change here.
	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != "" {
		if !req.Category.Valid() {
			return nil, apperrors.Validationf("unknown category %q", req.Category)
		}
		updates["category"] = req.Category
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	s.db.Preload("User").First(&product, product.ID)

	return &product, nil
}

// Approve moves a pending product into public listing. Approving an already
// approved product is a no-op success.
func (s *ProductService) Approve(id uuid.UUID, caller authz.Caller) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("product %s not found", id)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := authz.Authorize(authz.ActionProductApprove, caller, product.UserID); err != nil {
		return nil, err
	}

	if product.Status == models.ProductStatusApproved {
		return &product, nil
	}

	if err := s.db.Model(&product).Update("status", models.ProductStatusApproved).Error; err != nil {
		return nil, fmt.Errorf("failed to approve product: %w", err)
	}

	return &product, nil
}

func (s *ProductService) Delete(id uuid.UUID, caller authz.Caller) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFoundf("product %s not found", id)
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := authz.Authorize(authz.ActionProductDelete, caller, product.UserID); err != nil {
		return err
	}

	// Hard delete; orders keep their snapshot of the product fields.
	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (s *ProductService) List(filter ProductFilter, pager utils.PaginationParams, caller authz.Caller) (*ProductPage, error) {
	query := s.db.Model(&models.Product{}).Preload("User")

	if filter.StatusAll && authz.Authorize(authz.ActionProductListAll, caller, uuid.Nil) == nil {
		// Admin sees every status.
	} else {
		query = query.Where("status = ?", models.ProductStatusApproved)
	}

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.OwnerID != nil {
		query = query.Where("user_id = ?", *filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	query = query.Order("created_at DESC")
	query = utils.ApplyPagination(query, pager)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return &ProductPage{
		Products: products,
		Total:    total,
		Page:     pager.Page,
		Pages:    utils.TotalPages(total, pager.Limit),
	}, nil
}

// ListPending returns every product awaiting review, unpaginated.
func (s *ProductService) ListPending(caller authz.Caller) ([]models.Product, error) {
	if err := authz.Authorize(authz.ActionProductListAll, caller, uuid.Nil); err != nil {
		return nil, err
	}

	var products []models.Product
	if err := s.db.Preload("User").
		Where("status = ?", models.ProductStatusPending).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch pending products: %w", err)
	}

	return products, nil
}

// ListMine returns the owner's products in every status, unpaginated.
func (s *ProductService) ListMine(ownerID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Preload("User").
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch own products: %w", err)
	}

	return products, nil
}
