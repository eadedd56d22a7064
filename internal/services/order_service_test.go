package services

import (
	"strings"
	"testing"
	"time"

	"pos_api/internal/models"
	"pos_api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) OrderService {
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewVoucherRepository(db),
		nil,
	)
}

func productStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, id).Error)
	return product.Stock
}

func countOrders(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Order{}).Count(&n).Error)
	return n
}

func TestCheckoutSuccess(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	nasi := seedProduct(t, db, "Nasi Goreng", 10000, 5)
	teh := seedProduct(t, db, "Teh Manis", 4000, 10)
	svc := newOrderService(db)

	order, err := svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		Items: []repository.OrderLine{
			{ProductID: nasi.ID, Quantity: 3},
			{ProductID: teh.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 38000.0, order.TotalAmount)
	assert.Equal(t, 38000.0, order.Subtotal)
	assert.Equal(t, 2, productStock(t, db, nasi.ID))
	assert.Equal(t, 8, productStock(t, db, teh.ID))
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Nasi Goreng", order.Items[0].Product.Name)
	assert.Equal(t, 10000.0, order.Items[0].UnitPrice)
	assert.Equal(t, "cashier", order.User.Username)
	assert.True(t, strings.HasPrefix(order.Code, "KP-"))

	// CASH is the default and settles immediately.
	assert.Equal(t, string(models.PaymentCash), order.PaymentType)
	assert.Equal(t, string(models.OrderPaid), order.Status)
}

func TestCheckoutNonCashStaysPending(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	product := seedProduct(t, db, "Kopi", 8000, 3)
	svc := newOrderService(db)

	order, err := svc.Checkout(CheckoutInput{
		UserID:      staff.ID,
		Items:       []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
		PaymentType: string(models.PaymentQRIS),
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.OrderPending), order.Status)
}

func TestCheckoutInsufficientStockIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	nasi := seedProduct(t, db, "Nasi Goreng", 10000, 5)
	teh := seedProduct(t, db, "Teh Manis", 4000, 1)
	svc := newOrderService(db)

	_, err := svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		Items: []repository.OrderLine{
			{ProductID: nasi.ID, Quantity: 2},
			{ProductID: teh.ID, Quantity: 3},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Teh Manis")

	// Nothing persisted: the first line's decrement rolled back too.
	assert.Equal(t, 5, productStock(t, db, nasi.ID))
	assert.Equal(t, 1, productStock(t, db, teh.ID))
	assert.EqualValues(t, 0, countOrders(t, db))
}

func TestCheckoutUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	nasi := seedProduct(t, db, "Nasi Goreng", 10000, 5)
	svc := newOrderService(db)

	_, err := svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		Items: []repository.OrderLine{
			{ProductID: nasi.ID, Quantity: 1},
			{ProductID: 9999, Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.Equal(t, 5, productStock(t, db, nasi.ID))
	assert.EqualValues(t, 0, countOrders(t, db))
}

func TestCheckoutResubmitAfterFixSucceedsOnce(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	product := seedProduct(t, db, "Es Teh", 5000, 2)
	svc := newOrderService(db)

	_, err := svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 3}},
	})
	require.ErrorIs(t, err, repository.ErrInsufficientStock)
	assert.EqualValues(t, 0, countOrders(t, db))

	order, err := svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 10000.0, order.TotalAmount)
	assert.EqualValues(t, 1, countOrders(t, db))
	assert.Equal(t, 0, productStock(t, db, product.ID))
}

func TestCheckoutContentionNeverOverdraws(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	product := seedProduct(t, db, "Nasi Goreng", 10000, 5)
	svc := newOrderService(db)

	first, err := svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 30000.0, first.TotalAmount)
	assert.Equal(t, 2, productStock(t, db, product.ID))

	// Together the carts would overdraw; the second observes the reduced
	// stock and fails cleanly.
	_, err = svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 3}},
	})
	require.ErrorIs(t, err, repository.ErrInsufficientStock)
	assert.Equal(t, 2, productStock(t, db, product.ID))
	assert.EqualValues(t, 1, countOrders(t, db))
}

func TestCheckoutValidation(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	product := seedProduct(t, db, "Kopi", 8000, 10)
	svc := newOrderService(db)

	_, err := svc.Checkout(CheckoutInput{UserID: staff.ID})
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.Checkout(CheckoutInput{
		UserID:      staff.ID,
		Items:       []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
		PaymentType: "BARTER",
	})
	assert.ErrorIs(t, err, ErrInvalidPaymentType)

	unknown := uint(777)
	_, err = svc.Checkout(CheckoutInput{
		UserID:     staff.ID,
		CustomerID: &unknown,
		Items:      []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	assert.Equal(t, 10, productStock(t, db, product.ID))
}

func TestCheckoutWalkInCustomer(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	product := seedProduct(t, db, "Kopi", 8000, 10)
	svc := newOrderService(db)

	order, err := svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		WalkIn: &WalkInCustomer{Name: "Budi", Phone: "0812000111"},
		Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, order.Customer)
	assert.Equal(t, "Budi", order.Customer.Name)

	// Same phone on a later checkout reuses the record.
	second, err := svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		WalkIn: &WalkInCustomer{Name: "Budi", Phone: "0812000111"},
		Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, order.Customer.ID, second.Customer.ID)

	var n int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCheckoutFailureLeavesNoWalkInBehind(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	product := seedProduct(t, db, "Kopi", 8000, 2)
	svc := newOrderService(db)

	countCustomers := func() int64 {
		var n int64
		require.NoError(t, db.Model(&models.Customer{}).Count(&n).Error)
		return n
	}

	// Insufficient stock rolls back the phone-less walk-in with the rest
	// of the checkout.
	_, err := svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		WalkIn: &WalkInCustomer{Name: "Budi"},
		Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 5}},
	})
	require.ErrorIs(t, err, repository.ErrInsufficientStock)
	assert.EqualValues(t, 0, countCustomers())

	// The corrected resubmission creates the walk-in exactly once.
	order, err := svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		WalkIn: &WalkInCustomer{Name: "Budi"},
		Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.NotNil(t, order.Customer)
	assert.Equal(t, "Budi", order.Customer.Name)
	assert.EqualValues(t, 1, countCustomers())
}

func seedVoucher(t *testing.T, db *gorm.DB, v models.Voucher) *models.Voucher {
	t.Helper()
	if v.StartDate.IsZero() {
		v.StartDate = time.Now().Add(-time.Hour)
	}
	if v.EndDate.IsZero() {
		v.EndDate = time.Now().Add(time.Hour)
	}
	require.NoError(t, db.Create(&v).Error)
	return &v
}

func TestCheckoutAppliesPercentVoucherWithCap(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	product := seedProduct(t, db, "Nasi Goreng", 10000, 10)
	seedVoucher(t, db, models.Voucher{
		Code:         "HEMAT10",
		DiscountType: string(models.DiscountPercent),
		Value:        10,
		MaxDiscount:  2500,
		IsActive:     true,
	})
	svc := newOrderService(db)

	// 10% of 40000 is 4000, capped at 2500.
	order, err := svc.Checkout(CheckoutInput{
		UserID:      staff.ID,
		Items:       []repository.OrderLine{{ProductID: product.ID, Quantity: 4}},
		VoucherCode: "HEMAT10",
	})
	require.NoError(t, err)
	assert.Equal(t, 40000.0, order.Subtotal)
	assert.Equal(t, 2500.0, order.DiscountAmount)
	assert.Equal(t, 37500.0, order.TotalAmount)
	require.NotNil(t, order.Voucher)
	assert.Equal(t, 1, order.Voucher.UsedCount)
}

func TestCheckoutVoucherQuotaExhaustionIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	product := seedProduct(t, db, "Nasi Goreng", 10000, 10)
	quota := 1
	seedVoucher(t, db, models.Voucher{
		Code:         "SEKALI",
		DiscountType: string(models.DiscountFixed),
		Value:        5000,
		UsageQuota:   &quota,
		IsActive:     true,
	})
	svc := newOrderService(db)

	first, err := svc.Checkout(CheckoutInput{
		UserID:      staff.ID,
		Items:       []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
		VoucherCode: "SEKALI",
	})
	require.NoError(t, err)
	assert.Equal(t, 5000.0, first.TotalAmount)

	_, err = svc.Checkout(CheckoutInput{
		UserID:      staff.ID,
		Items:       []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
		VoucherCode: "SEKALI",
	})
	require.ErrorIs(t, err, repository.ErrVoucherExhausted)

	// The failed checkout rolled back its stock decrement too.
	assert.Equal(t, 9, productStock(t, db, product.ID))
	assert.EqualValues(t, 1, countOrders(t, db))
}

func TestCheckoutVoucherMinPurchase(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	product := seedProduct(t, db, "Teh Manis", 4000, 10)
	seedVoucher(t, db, models.Voucher{
		Code:         "MIN50",
		DiscountType: string(models.DiscountFixed),
		Value:        5000,
		MinPurchase:  50000,
		IsActive:     true,
	})
	svc := newOrderService(db)

	_, err := svc.Checkout(CheckoutInput{
		UserID:      staff.ID,
		Items:       []repository.OrderLine{{ProductID: product.ID, Quantity: 2}},
		VoucherCode: "MIN50",
	})
	require.ErrorIs(t, err, repository.ErrVoucherMinPurchase)
	assert.Equal(t, 10, productStock(t, db, product.ID))
}

func TestCheckoutRejectsInactiveOrUnknownVoucher(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	product := seedProduct(t, db, "Teh Manis", 4000, 10)
	seedVoucher(t, db, models.Voucher{
		Code:         "KADALUARSA",
		DiscountType: string(models.DiscountFixed),
		Value:        1000,
		IsActive:     true,
		StartDate:    time.Now().Add(-48 * time.Hour),
		EndDate:      time.Now().Add(-24 * time.Hour),
	})
	svc := newOrderService(db)

	_, err := svc.Checkout(CheckoutInput{
		UserID:      staff.ID,
		Items:       []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
		VoucherCode: "KADALUARSA",
	})
	assert.ErrorIs(t, err, ErrVoucherInactive)

	_, err = svc.Checkout(CheckoutInput{
		UserID:      staff.ID,
		Items:       []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
		VoucherCode: "TIDAKADA",
	})
	assert.ErrorIs(t, err, ErrVoucherNotFound)
	assert.Equal(t, 10, productStock(t, db, product.ID))
}

func TestTodayOrderCountFallsBackToDatabase(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	product := seedProduct(t, db, "Kopi", 8000, 10)
	svc := newOrderService(db) // no cache configured

	for i := 0; i < 3; i++ {
		_, err := svc.Checkout(CheckoutInput{
			UserID: staff.ID,
			Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	count, err := svc.TodayOrderCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestOrdersListedNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	product := seedProduct(t, db, "Kopi", 8000, 10)
	svc := newOrderService(db)

	first, err := svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// created_at has second resolution on some stores
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", first.ID).
		UpdateColumn("created_at", time.Now().Add(-time.Minute)).Error)

	second, err := svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	orders, err := svc.GetAllOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestOrdersByUserExcludesOtherCashiers(t *testing.T) {
	db := setupTestDB(t)
	staff := seedStaff(t, db)
	other := &models.User{Username: "cashier2", Password: "hashed", Role: string(models.RoleStaff), IsActive: true}
	require.NoError(t, db.Create(other).Error)
	product := seedProduct(t, db, "Kopi", 8000, 10)
	svc := newOrderService(db)

	mine, err := svc.Checkout(CheckoutInput{
		UserID: staff.ID,
		Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = svc.Checkout(CheckoutInput{
		UserID: other.ID,
		Items:  []repository.OrderLine{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	orders, err := svc.GetOrdersByUser(staff.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.Code, orders[0].Code)
	assert.Equal(t, staff.ID, orders[0].UserID)
}
