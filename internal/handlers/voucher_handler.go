package handlers

import (
	"net/http"
	"strconv"
	"time"

	"pos_api/internal/models"
	"pos_api/internal/services"
	"pos_api/pkg/response"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	voucherService services.VoucherService
}

func NewVoucherHandler(voucherService services.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

func (h *VoucherHandler) List(c *gin.Context) {
	vouchers, err := h.voucherService.ListVouchers(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, vouchers)
}

func (h *VoucherHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid voucher id")
		return
	}

	voucher, err := h.voucherService.GetVoucherByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, voucher)
}

type voucherRequest struct {
	Code         string    `json:"code" binding:"required"`
	DiscountType string    `json:"discount_type" binding:"required"`
	Value        float64   `json:"value" binding:"required"`
	MinPurchase  float64   `json:"min_purchase"`
	MaxDiscount  float64   `json:"max_discount"`
	UsageQuota   *int      `json:"usage_quota"`
	IsActive     *bool     `json:"is_active"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
}

func (h *VoucherHandler) Create(c *gin.Context) {
	var req voucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid voucher payload")
		return
	}

	voucher := &models.Voucher{
		Code:         req.Code,
		DiscountType: req.DiscountType,
		Value:        req.Value,
		MinPurchase:  req.MinPurchase,
		MaxDiscount:  req.MaxDiscount,
		UsageQuota:   req.UsageQuota,
		IsActive:     true,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if req.IsActive != nil {
		voucher.IsActive = *req.IsActive
	}

	if err := h.voucherService.CreateVoucher(voucher); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, voucher)
}

func (h *VoucherHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid voucher id")
		return
	}

	voucher, err := h.voucherService.GetVoucherByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	var req voucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid voucher payload")
		return
	}

	voucher.Code = req.Code
	voucher.DiscountType = req.DiscountType
	voucher.Value = req.Value
	voucher.MinPurchase = req.MinPurchase
	voucher.MaxDiscount = req.MaxDiscount
	voucher.UsageQuota = req.UsageQuota
	voucher.StartDate = req.StartDate
	voucher.EndDate = req.EndDate
	if req.IsActive != nil {
		voucher.IsActive = *req.IsActive
	}

	if err := h.voucherService.UpdateVoucher(voucher); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, voucher)
}

func (h *VoucherHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid voucher id")
		return
	}

	if _, err := h.voucherService.GetVoucherByID(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	if err := h.voucherService.DeleteVoucher(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
