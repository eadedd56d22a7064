package repository

import (
	"time"

	"pos_api/internal/models"

	"gorm.io/gorm"
)

type VoucherRepository interface {
	Create(voucher *models.Voucher) error
	GetByID(id uint) (*models.Voucher, error)
	GetByCode(code string) (*models.Voucher, error)
	GetByCodeUnscoped(code string) (*models.Voucher, error)
	GetAll() ([]models.Voucher, error)
	GetActive(now time.Time) ([]models.Voucher, error)
	GetExpired(now time.Time) ([]models.Voucher, error)
	Update(voucher *models.Voucher) error
	Delete(id uint) error
}

type voucherRepository struct {
	db *gorm.DB
}

func NewVoucherRepository(db *gorm.DB) VoucherRepository {
	return &voucherRepository{db: db}
}

func (r *voucherRepository) Create(voucher *models.Voucher) error {
	return r.db.Create(voucher).Error
}

func (r *voucherRepository) GetByID(id uint) (*models.Voucher, error) {
	var voucher models.Voucher
	err := r.db.First(&voucher, id).Error
	if err != nil {
		return nil, err
	}
	return &voucher, nil
}

func (r *voucherRepository) GetByCode(code string) (*models.Voucher, error) {
	var voucher models.Voucher
	err := r.db.Where("code = ?", code).First(&voucher).Error
	if err != nil {
		return nil, err
	}
	return &voucher, nil
}

// GetByCodeUnscoped also matches soft-deleted rows; the unique index still
// holds their codes, so uniqueness checks must see them.
func (r *voucherRepository) GetByCodeUnscoped(code string) (*models.Voucher, error) {
	var voucher models.Voucher
	err := r.db.Unscoped().Where("code = ?", code).First(&voucher).Error
	if err != nil {
		return nil, err
	}
	return &voucher, nil
}

func (r *voucherRepository) GetAll() ([]models.Voucher, error) {
	var vouchers []models.Voucher
	err := r.db.Order("created_at DESC").Find(&vouchers).Error
	return vouchers, err
}

func (r *voucherRepository) GetActive(now time.Time) ([]models.Voucher, error) {
	var vouchers []models.Voucher
	err := r.db.
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("created_at DESC").
		Find(&vouchers).Error
	return vouchers, err
}

func (r *voucherRepository) GetExpired(now time.Time) ([]models.Voucher, error) {
	var vouchers []models.Voucher
	err := r.db.Where("end_date < ?", now).Order("created_at DESC").Find(&vouchers).Error
	return vouchers, err
}

func (r *voucherRepository) Update(voucher *models.Voucher) error {
	return r.db.Save(voucher).Error
}

func (r *voucherRepository) Delete(id uint) error {
	return r.db.Delete(&models.Voucher{}, id).Error
}
