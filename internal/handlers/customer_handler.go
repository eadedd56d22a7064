package handlers

import (
	"net/http"
	"strconv"

	"pos_api/internal/models"
	"pos_api/internal/services"
	"pos_api/pkg/response"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) List(c *gin.Context) {
	if c.Query("members") == "true" {
		customers, err := h.customerService.GetMembers()
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, customers)
		return
	}

	customers, err := h.customerService.GetAllCustomers()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	customer, err := h.customerService.GetCustomerByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customer)
}

type customerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    *string `json:"phone"`
	Email    string  `json:"email"`
	Address  string  `json:"address"`
	IsMember bool    `json:"is_member"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid customer payload")
		return
	}

	customer := &models.Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		IsMember: req.IsMember,
	}
	if err := h.customerService.CreateCustomer(customer); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	customer, err := h.customerService.GetCustomerByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid customer payload")
		return
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.Address = req.Address
	customer.IsMember = req.IsMember

	if err := h.customerService.UpdateCustomer(customer); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	if _, err := h.customerService.GetCustomerByID(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	if err := h.customerService.DeleteCustomer(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
