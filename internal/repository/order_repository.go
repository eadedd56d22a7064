package repository

import (
	"errors"
	"time"

	"pos_api/internal/models"

	"gorm.io/gorm"
)

// OrderLine is one submitted cart line.
type OrderLine struct {
	ProductID uint
	Quantity  int
}

// WalkInCustomer is a customer created ad hoc inside the checkout
// transaction, so a failed checkout leaves no customer row behind.
type WalkInCustomer struct {
	Name  string
	Phone string
}

type OrderRepository interface {
	CreateWithItems(order *models.Order, lines []OrderLine, voucher *models.Voucher, walkIn *WalkInCustomer) error
	GetByID(id uint) (*models.Order, error)
	GetByCode(code string) (*models.Order, error)
	GetAll() ([]models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error)
	CountSince(from time.Time) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithItems runs the checkout unit of work: validate every line in
// submission order, decrement stock, consume one voucher quota unit when a
// voucher is given, and insert the order with its items. The first failing
// line aborts the whole transaction, so either every side effect happens
// or none do.
//
// Stock is decremented with a guarded conditional UPDATE (stock >= qty in
// the WHERE clause), so two concurrent checkouts overdrawing the same
// product can never drive stock negative: the slower one sees zero rows
// affected and the transaction rolls back.
func (r *orderRepository) CreateWithItems(order *models.Order, lines []OrderLine, voucher *models.Voucher, walkIn *WalkInCustomer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var subtotal float64
		items := make([]models.OrderItem, 0, len(lines))

		for _, line := range lines {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{ProductID: line.ProductID}
				}
				return err
			}

			if product.Stock < line.Quantity {
				return &InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   line.Quantity,
					Available:   product.Stock,
				}
			}

			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", product.ID, line.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Lost the race against a concurrent checkout.
				return &InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   line.Quantity,
					Available:   product.Stock,
				}
			}

			lineSubtotal := product.Price * float64(line.Quantity)
			subtotal += lineSubtotal
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
				Subtotal:  lineSubtotal,
			})
		}

		order.Subtotal = subtotal
		order.DiscountAmount = 0

		if walkIn != nil {
			customerID, err := resolveWalkIn(tx, walkIn)
			if err != nil {
				return err
			}
			order.CustomerID = customerID
		}

		if voucher != nil {
			if subtotal < voucher.MinPurchase {
				return ErrVoucherMinPurchase
			}

			res := tx.Model(&models.Voucher{}).
				Where("id = ? AND (usage_quota IS NULL OR used_count < usage_quota)", voucher.ID).
				UpdateColumn("used_count", gorm.Expr("used_count + 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrVoucherExhausted
			}

			order.VoucherID = &voucher.ID
			order.DiscountAmount = voucher.DiscountFor(subtotal)
		}

		order.TotalAmount = order.Subtotal - order.DiscountAmount
		order.Items = items

		// Items are inserted with the order; referenced rows are not upserted.
		return tx.Omit("User", "Customer", "Voucher").Create(order).Error
	})
}

// resolveWalkIn finds or creates the walk-in customer within the checkout
// transaction. A known phone reuses the existing record; otherwise a new
// customer row is created, and rolled back with the rest of the checkout
// on failure.
func resolveWalkIn(tx *gorm.DB, walkIn *WalkInCustomer) (*uint, error) {
	if walkIn.Phone != "" {
		var existing models.Customer
		err := tx.Where("phone = ?", walkIn.Phone).First(&existing).Error
		if err == nil {
			return &existing.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	customer := models.Customer{Name: walkIn.Name}
	if walkIn.Phone != "" {
		phone := walkIn.Phone
		customer.Phone = &phone
	}
	if err := tx.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer.ID, nil
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Items.Product").
		Preload("User").
		Preload("Customer").
		Preload("Voucher").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByCode(code string) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Items.Product").
		Preload("User").
		Preload("Customer").
		Preload("Voucher").
		Where("code = ?", code).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("Items.Product").
		Preload("User").
		Preload("Customer").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) CountSince(from time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&models.Order{}).Where("created_at >= ?", from).Count(&n).Error
	return n, err
}

func (r *orderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
