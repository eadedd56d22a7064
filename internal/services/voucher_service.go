package services

import (
	"errors"
	"time"

	"pos_api/internal/models"
	"pos_api/internal/repository"

	"gorm.io/gorm"
)

type VoucherService interface {
	CreateVoucher(voucher *models.Voucher) error
	GetVoucherByID(id uint) (*models.Voucher, error)
	GetVoucherByCode(code string) (*models.Voucher, error)
	ListVouchers(status string) ([]models.Voucher, error)
	UpdateVoucher(voucher *models.Voucher) error
	DeleteVoucher(id uint) error
}

type voucherService struct {
	voucherRepo repository.VoucherRepository
}

func NewVoucherService(voucherRepo repository.VoucherRepository) VoucherService {
	return &voucherService{voucherRepo: voucherRepo}
}

func (s *voucherService) CreateVoucher(voucher *models.Voucher) error {
	if err := validateVoucher(voucher); err != nil {
		return err
	}

	_, err := s.voucherRepo.GetByCodeUnscoped(voucher.Code)
	if err == nil {
		return ErrVoucherCodeTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.voucherRepo.Create(voucher)
}

func (s *voucherService) GetVoucherByID(id uint) (*models.Voucher, error) {
	voucher, err := s.voucherRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}
	return voucher, nil
}

func (s *voucherService) GetVoucherByCode(code string) (*models.Voucher, error) {
	voucher, err := s.voucherRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}
	return voucher, nil
}

func (s *voucherService) ListVouchers(status string) ([]models.Voucher, error) {
	switch status {
	case "active":
		return s.voucherRepo.GetActive(time.Now())
	case "expired":
		return s.voucherRepo.GetExpired(time.Now())
	default:
		return s.voucherRepo.GetAll()
	}
}

func (s *voucherService) UpdateVoucher(voucher *models.Voucher) error {
	if err := validateVoucher(voucher); err != nil {
		return err
	}

	existing, err := s.voucherRepo.GetByCodeUnscoped(voucher.Code)
	if err == nil && existing.ID != voucher.ID {
		return ErrVoucherCodeTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.voucherRepo.Update(voucher)
}

func (s *voucherService) DeleteVoucher(id uint) error {
	return s.voucherRepo.Delete(id)
}

func validateVoucher(voucher *models.Voucher) error {
	if voucher.Code == "" {
		return ErrInvalidVoucher
	}
	if !models.ValidDiscountType(voucher.DiscountType) {
		return ErrInvalidVoucher
	}
	if voucher.Value <= 0 {
		return ErrInvalidVoucher
	}
	if voucher.DiscountType == string(models.DiscountPercent) && voucher.Value > 100 {
		return ErrInvalidVoucher
	}
	if voucher.MinPurchase < 0 || voucher.MaxDiscount < 0 {
		return ErrInvalidVoucher
	}
	if voucher.UsageQuota != nil && *voucher.UsageQuota < 1 {
		return ErrInvalidVoucher
	}
	if !voucher.EndDate.After(voucher.StartDate) {
		return ErrInvalidVoucher
	}
	return nil
}
