// internal/services/order_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/digibay/digibay-backend/internal/apperrors"
	"github.com/digibay/digibay-backend/internal/models"
)

type OrderServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	products *ProductService
	svc      *OrderService
	seller   *models.User
	buyer    *models.User
	admin    *models.User
	product  *models.Product
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.products = NewProductService(s.db)
	s.svc = NewOrderService(s.db)
	s.seller = createTestUser(s.T(), s.db, "seller", models.UserRoleUser)
	s.buyer = createTestUser(s.T(), s.db, "buyer", models.UserRoleUser)
	s.admin = createTestUser(s.T(), s.db, "admin", models.UserRoleAdmin)
	s.product = createTestProduct(s.T(), s.db, s.products, s.seller, "Logo Pack")
}

func (s *OrderServiceTestSuite) TestCreateOrder() {
	order, err := s.svc.Create(s.buyer.ID, &CreateOrderRequest{
		ProductID: s.product.ID,
		Amount:    10,
	})
	s.NoError(err)
	s.Equal(models.OrderStatusCreated, order.Status)
	s.Equal(s.buyer.ID, order.BuyerID)
	s.Equal(10.0, order.Amount)
}

func (s *OrderServiceTestSuite) TestCreateOrderSnapshotsProduct() {
	order, err := s.svc.Create(s.buyer.ID, &CreateOrderRequest{
		ProductID: s.product.ID,
		Amount:    10,
	})
	s.NoError(err)
	s.Equal("Logo Pack", order.ProductTitle)
	s.Equal(10.0, order.ProductPrice)

	// Deleting the product leaves the order history intact.
	s.NoError(s.products.Delete(s.product.ID, asCaller(s.seller)))

	got, err := s.svc.Get(order.ID, asCaller(s.buyer))
	s.NoError(err)
	s.Equal("Logo Pack", got.ProductTitle)
	s.Equal(10.0, got.ProductPrice)
}

func (s *OrderServiceTestSuite) TestCreateOrderMissingProduct() {
	_, err := s.svc.Create(s.buyer.ID, &CreateOrderRequest{
		ProductID: uuid.New(),
		Amount:    10,
	})
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *OrderServiceTestSuite) TestCreateOrderRejectsNegativeAmount() {
	_, err := s.svc.Create(s.buyer.ID, &CreateOrderRequest{
		ProductID: s.product.ID,
		Amount:    -5,
	})
	s.True(errors.Is(err, apperrors.ErrValidation))
	s.Contains(err.Error(), "Amount must be at least 0")
}

func (s *OrderServiceTestSuite) TestCreateOrderAllowsPendingProduct() {
	// The product is still pending; ordering is permitted regardless.
	s.Equal(models.ProductStatusPending, s.product.Status)

	order, err := s.svc.Create(s.buyer.ID, &CreateOrderRequest{
		ProductID: s.product.ID,
		Amount:    10,
	})
	s.NoError(err)
	s.Equal(models.OrderStatusCreated, order.Status)
}

func (s *OrderServiceTestSuite) TestPayAdvancesAndNeverReverses() {
	order, err := s.svc.Create(s.buyer.ID, &CreateOrderRequest{
		ProductID: s.product.ID,
		Amount:    10,
	})
	s.NoError(err)

	paid, err := s.svc.Pay(order.ID, asCaller(s.buyer))
	s.NoError(err)
	s.Equal(models.OrderStatusPaid, paid.Status)

	// Paying again keeps the order paid.
	paid, err = s.svc.Pay(order.ID, asCaller(s.buyer))
	s.NoError(err)
	s.Equal(models.OrderStatusPaid, paid.Status)
}

func (s *OrderServiceTestSuite) TestPayMissingReturnsNotFound() {
	_, err := s.svc.Pay(uuid.New(), asCaller(s.buyer))
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *OrderServiceTestSuite) TestGetMissingReturnsNotFound() {
	_, err := s.svc.Get(uuid.New(), asCaller(s.buyer))
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *OrderServiceTestSuite) TestListMine() {
	mine, err := s.svc.Create(s.buyer.ID, &CreateOrderRequest{ProductID: s.product.ID, Amount: 10})
	s.NoError(err)
	_, err = s.svc.Create(s.seller.ID, &CreateOrderRequest{ProductID: s.product.ID, Amount: 10})
	s.NoError(err)

	orders, err := s.svc.ListMine(s.buyer.ID)
	s.NoError(err)
	s.Len(orders, 1)
	s.Equal(mine.ID, orders[0].ID)
}

func (s *OrderServiceTestSuite) TestListAllAdminOnly() {
	_, err := s.svc.Create(s.buyer.ID, &CreateOrderRequest{ProductID: s.product.ID, Amount: 10})
	s.NoError(err)

	_, err = s.svc.ListAll(asCaller(s.buyer))
	s.True(errors.Is(err, apperrors.ErrForbidden))

	orders, err := s.svc.ListAll(asCaller(s.admin))
	s.NoError(err)
	s.Len(orders, 1)
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
