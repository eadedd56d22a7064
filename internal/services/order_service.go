package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"pos_api/internal/models"
	"pos_api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WalkInCustomer describes a customer created ad hoc at checkout time.
type WalkInCustomer struct {
	Name  string
	Phone string
}

// CheckoutInput is the full contract of the checkout transaction.
type CheckoutInput struct {
	UserID      uint
	CustomerID  *uint
	WalkIn      *WalkInCustomer
	Items       []repository.OrderLine
	PaymentType string
	VoucherCode string
}

type OrderService interface {
	Checkout(input CheckoutInput) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	GetOrdersByUser(userID uint) ([]models.Order, error)
	TodayOrderCount() (int, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	voucherRepo  repository.VoucherRepository
	cache        CatalogCache
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	voucherRepo repository.VoucherRepository,
	cache CatalogCache,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		voucherRepo:  voucherRepo,
		cache:        cache,
	}
}

// Checkout converts a submitted cart into a persisted order. Validation,
// stock decrements, voucher consumption and the order insert all happen in
// one database transaction, so a failed checkout leaves no side effects
// and is safe to resubmit.
func (s *orderService) Checkout(input CheckoutInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	paymentType := input.PaymentType
	if paymentType == "" {
		paymentType = string(models.PaymentCash)
	}
	if !models.ValidPaymentType(paymentType) {
		return nil, ErrInvalidPaymentType
	}

	customerID, err := s.resolveCustomer(input)
	if err != nil {
		return nil, err
	}

	var walkIn *repository.WalkInCustomer
	if input.CustomerID == nil && input.WalkIn != nil {
		if input.WalkIn.Name == "" {
			return nil, ErrCustomerNameMissing
		}
		walkIn = &repository.WalkInCustomer{
			Name:  input.WalkIn.Name,
			Phone: input.WalkIn.Phone,
		}
	}

	var voucher *models.Voucher
	if input.VoucherCode != "" {
		voucher, err = s.resolveVoucher(input.VoucherCode)
		if err != nil {
			return nil, err
		}
	}

	status := string(models.OrderPending)
	if paymentType == string(models.PaymentCash) {
		status = string(models.OrderPaid)
	}

	order := &models.Order{
		Code:        generateOrderCode(),
		UserID:      input.UserID,
		CustomerID:  customerID,
		PaymentType: paymentType,
		Status:      status,
	}

	if err := s.orderRepo.CreateWithItems(order, input.Items, voucher, walkIn); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateProducts(); err != nil {
			log.Printf("Warning: failed to invalidate product cache: %v", err)
		}
		if err := s.cache.IncrDailyOrders(time.Now().Format("2006-01-02")); err != nil {
			log.Printf("Warning: failed to increment order counter: %v", err)
		}
	}

	return s.orderRepo.GetByID(order.ID)
}

// resolveCustomer verifies a pre-registered customer reference. Walk-in
// creation happens inside the checkout transaction instead, so a failed
// checkout never leaves a customer row behind.
func (s *orderService) resolveCustomer(input CheckoutInput) (*uint, error) {
	if input.CustomerID == nil {
		return nil, nil
	}

	customer, err := s.customerRepo.GetByID(*input.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer.ID, nil
}

func (s *orderService) resolveVoucher(code string) (*models.Voucher, error) {
	voucher, err := s.voucherRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}
	if !voucher.CurrentlyActive(time.Now()) {
		return nil, ErrVoucherInactive
	}
	return voucher, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// TodayOrderCount answers the POS header widget from the cached counter
// when available, falling back to a database count.
func (s *orderService) TodayOrderCount() (int, error) {
	now := time.Now()
	if s.cache != nil {
		if n, err := s.cache.GetDailyOrders(now.Format("2006-01-02")); err == nil && n > 0 {
			return n, nil
		}
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	n, err := s.orderRepo.CountSince(midnight)
	return int(n), err
}

// generateOrderCode builds a human-readable order code with a uuid-derived
// suffix. The unique constraint on orders.code is the backstop.
func generateOrderCode() string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("KP-%s-%s", time.Now().Format("20060102"), suffix)
}
