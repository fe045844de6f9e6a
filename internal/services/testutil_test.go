// internal/services/testutil_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/digibay/digibay-backend/internal/authz"
	"github.com/digibay/digibay-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive for the test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Name:  name,
		Email: name + "@example.com",
		Role:  role,
	}
	require.NoError(t, user.SetPassword("TestPass123!"))
	require.NoError(t, db.Create(user).Error)

	return user
}

func asCaller(u *models.User) authz.Caller {
	return authz.Caller{ID: u.ID, Role: u.Role}
}

func createTestProduct(t *testing.T, db *gorm.DB, svc *ProductService, owner *models.User, title string) *models.Product {
	t.Helper()

	product, err := svc.Create(owner.ID, &CreateProductRequest{
		Title:       title,
		Description: "test product",
		Price:       10,
		Category:    models.ProductCategoryTemplate,
		Image:       "/uploads/test-image.png",
		File:        "/uploads/test-file.zip",
	})
	require.NoError(t, err)

	return product
}
