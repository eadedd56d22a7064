package services

import "errors"

var (
	ErrEmptyCart           = errors.New("cart must contain at least one item")
	ErrInvalidQuantity     = errors.New("item quantity must be at least 1")
	ErrInvalidPaymentType  = errors.New("invalid payment type")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrVoucherNotFound     = errors.New("voucher not found")
	ErrVoucherInactive     = errors.New("voucher is not active")
	ErrVoucherCodeTaken    = errors.New("voucher code already exists")
	ErrInvalidVoucher      = errors.New("invalid voucher definition")
	ErrProductNameTaken    = errors.New("product name already exists")
	ErrInvalidCategory     = errors.New("invalid product category")
	ErrInvalidPrice        = errors.New("price must be greater than zero")
	ErrInvalidStock        = errors.New("stock cannot be negative")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserInactive        = errors.New("user account is inactive")
	ErrCustomerPhoneTaken  = errors.New("customer phone already registered")
	ErrCustomerNameMissing = errors.New("customer name is required")
)
