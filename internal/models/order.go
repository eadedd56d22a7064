package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Code           string         `json:"code" gorm:"unique;not null"`
	UserID         uint           `json:"user_id" gorm:"not null"`
	User           User           `json:"user" gorm:"foreignKey:UserID"`
	CustomerID     *uint          `json:"customer_id"`
	Customer       *Customer      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	VoucherID      *uint          `json:"voucher_id"`
	Voucher        *Voucher       `json:"voucher,omitempty" gorm:"foreignKey:VoucherID"`
	Subtotal       float64        `json:"subtotal" gorm:"type:decimal(12,2);not null"`
	DiscountAmount float64        `json:"discount_amount" gorm:"type:decimal(12,2);default:0"`
	TotalAmount    float64        `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	PaymentType    string         `json:"payment_type" gorm:"default:'CASH'"` // CASH, QRIS, TRANSFER, DEBIT
	Status         string         `json:"status" gorm:"default:'PENDING'"`    // PENDING, PAID, CANCELLED, FAILED
	Items          []OrderItem    `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderCancelled OrderStatus = "CANCELLED"
	OrderFailed    OrderStatus = "FAILED"
)

type PaymentType string

const (
	PaymentCash     PaymentType = "CASH"
	PaymentQRIS     PaymentType = "QRIS"
	PaymentTransfer PaymentType = "TRANSFER"
	PaymentDebit    PaymentType = "DEBIT"
)

func ValidPaymentType(paymentType string) bool {
	switch PaymentType(paymentType) {
	case PaymentCash, PaymentQRIS, PaymentTransfer, PaymentDebit:
		return true
	}
	return false
}
