package models

import (
	"time"

	"gorm.io/gorm"
)

type Voucher struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Code         string         `json:"code" gorm:"unique;not null"`
	DiscountType string         `json:"discount_type" gorm:"not null"` // FIXED, PERCENT
	Value        float64        `json:"value" gorm:"type:decimal(12,2);not null"`
	MinPurchase  float64        `json:"min_purchase" gorm:"type:decimal(12,2);default:0"`
	MaxDiscount  float64        `json:"max_discount" gorm:"type:decimal(12,2);default:0"` // 0 = no cap
	UsageQuota   *int           `json:"usage_quota"`                                      // nil = unlimited
	UsedCount    int            `json:"used_count" gorm:"default:0"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	StartDate    time.Time      `json:"start_date" gorm:"not null"`
	EndDate      time.Time      `json:"end_date" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type DiscountType string

const (
	DiscountFixed   DiscountType = "FIXED"
	DiscountPercent DiscountType = "PERCENT"
)

func ValidDiscountType(discountType string) bool {
	switch DiscountType(discountType) {
	case DiscountFixed, DiscountPercent:
		return true
	}
	return false
}

// CurrentlyActive reports whether the voucher can be redeemed at the given
// instant: the active flag is set and the instant falls inside the
// validity window.
func (v *Voucher) CurrentlyActive(now time.Time) bool {
	return v.IsActive && !now.Before(v.StartDate) && !now.After(v.EndDate)
}

// DiscountFor computes the discount the voucher grants on a subtotal.
// PERCENT discounts honor the MaxDiscount cap when set; FIXED discounts
// never exceed the subtotal itself.
func (v *Voucher) DiscountFor(subtotal float64) float64 {
	var discount float64
	switch DiscountType(v.DiscountType) {
	case DiscountPercent:
		discount = subtotal * v.Value / 100
		if v.MaxDiscount > 0 && discount > v.MaxDiscount {
			discount = v.MaxDiscount
		}
	case DiscountFixed:
		discount = v.Value
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}
