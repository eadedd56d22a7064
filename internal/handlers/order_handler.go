package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"pos_api/internal/repository"
	"pos_api/internal/services"
	"pos_api/pkg/receipt"
	"pos_api/pkg/response"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
	business     receipt.BusinessInfo
}

func NewOrderHandler(orderService services.OrderService, business receipt.BusinessInfo) *OrderHandler {
	return &OrderHandler{orderService: orderService, business: business}
}

type checkoutItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type walkInRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type checkoutRequest struct {
	CustomerID  *uint                 `json:"customer_id"`
	WalkIn      *walkInRequest        `json:"walk_in"`
	Items       []checkoutItemRequest `json:"items" binding:"required"`
	PaymentType string                `json:"payment_type"`
	VoucherCode string                `json:"voucher_code"`
}

// Create runs the checkout transaction for the authenticated cashier.
func (h *OrderHandler) Create(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid checkout payload")
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		response.Fail(c, http.StatusUnauthorized, "missing user context")
		return
	}

	lines := make([]repository.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, repository.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	input := services.CheckoutInput{
		UserID:      userID,
		CustomerID:  req.CustomerID,
		Items:       lines,
		PaymentType: req.PaymentType,
		VoucherCode: req.VoucherCode,
	}
	if req.WalkIn != nil {
		input.WalkIn = &services.WalkInCustomer{
			Name:  req.WalkIn.Name,
			Phone: req.WalkIn.Phone,
		}
	}

	order, err := h.orderService.Checkout(input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// ListMine returns the authenticated cashier's own orders.
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		response.Fail(c, http.StatusUnauthorized, "missing user context")
		return
	}

	orders, err := h.orderService.GetOrdersByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrderByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

// TodaySummary reports how many orders were created today, for the POS
// header widget.
func (h *OrderHandler) TodaySummary(c *gin.Context) {
	count, err := h.orderService.TodayOrderCount()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders_today": count})
}

// Receipt streams the order's PDF receipt.
func (h *OrderHandler) Receipt(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrderByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	pdf, err := receipt.Render(order, h.business)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", order.Code))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
