// internal/services/order_service.go
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

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

type CreateOrderRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Amount    float64   `json:"amount" validate:"gte=0"`
}

// Create records an order against a product. The amount is taken from the
// caller (only non-negative values pass validation) and the product does not
// have to be approved; real payment
// validation is out of scope. The product title and listed price are
// snapshotted onto the order.
func (s *OrderService) Create(buyerID uuid.UUID, req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validationf("%s", utils.ValidationMessages(err))
	}

	if req.ProductID == uuid.Nil {
		return nil, apperrors.Validationf("product_id is required")
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("product %s not found", req.ProductID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	order := &models.Order{
		ProductID:    product.ID,
		BuyerID:      buyerID,
		Amount:       req.Amount,
		Status:       models.OrderStatusCreated,
		ProductTitle: product.Title,
		ProductPrice: product.Price,
	}

	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.db.Preload("Product").Preload("Product.User").First(order, order.ID)

	return order, nil
}

// Pay marks the order paid. Any authenticated caller may trigger it, and the
// transition never reverses; paying a paid order leaves it paid.
func (s *OrderService) Pay(orderID uuid.UUID, caller authz.Caller) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("order %s not found", orderID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.Status != models.OrderStatusPaid {
		if err := s.db.Model(&order).Update("status", models.OrderStatusPaid).Error; err != nil {
			return nil, fmt.Errorf("failed to pay order: %w", err)
		}
	}

	s.db.Preload("Product").First(&order, order.ID)

	return &order, nil
}

func (s *OrderService) Get(id uuid.UUID, caller authz.Caller) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Product").Preload("Buyer").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("order %s not found", id)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &order, nil
}

func (s *OrderService) ListMine(buyerID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Product").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, nil
}

func (s *OrderService) ListAll(caller authz.Caller) ([]models.Order, error) {
	if err := authz.Authorize(authz.ActionOrderListAll, caller, uuid.Nil); err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := s.db.Preload("Product").Preload("Buyer").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, nil
}
