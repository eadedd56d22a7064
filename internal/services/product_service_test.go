package services

import (
	"testing"
	"time"

	"pos_api/internal/models"
	"pos_api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(db *gorm.DB) ProductService {
	return NewProductService(repository.NewProductRepository(db), nil, time.Minute)
}

func TestCreateProductValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)

	assert.ErrorIs(t, svc.CreateProduct(&models.Product{Name: "Gratis", Price: 0}), ErrInvalidPrice)
	assert.ErrorIs(t, svc.CreateProduct(&models.Product{Name: "Minus", Price: 1000, Stock: -1}), ErrInvalidStock)
	assert.ErrorIs(t, svc.CreateProduct(&models.Product{Name: "Aneh", Price: 1000, Category: "GADGET"}), ErrInvalidCategory)

	blank := &models.Product{Name: "Tanpa Kategori", Price: 1000}
	require.NoError(t, svc.CreateProduct(blank))
	assert.Equal(t, string(models.CategoryOther), blank.Category)
}

func TestCreateProductDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)

	require.NoError(t, svc.CreateProduct(&models.Product{Name: "Kopi", Price: 8000}))
	assert.ErrorIs(t, svc.CreateProduct(&models.Product{Name: "Kopi", Price: 9000}), ErrProductNameTaken)
}

func TestDeletedProductStillHoldsItsName(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)

	original := &models.Product{Name: "Kopi", Price: 8000}
	require.NoError(t, svc.CreateProduct(original))
	require.NoError(t, svc.DeleteProduct(original.ID))

	// The unique index covers soft-deleted rows, so recreating the name
	// must surface the duplicate error, not a constraint violation.
	assert.ErrorIs(t, svc.CreateProduct(&models.Product{Name: "Kopi", Price: 9000}), ErrProductNameTaken)
}

func TestLowStockFilter(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, "Hampir Habis", 1000, 2)
	seedProduct(t, db, "Banyak", 1000, 50)
	svc := newProductService(db)

	low, err := svc.GetLowStockProducts(5)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Hampir Habis", low[0].Name)
}
