package handlers

import (
	"net/http"
	"strconv"

	"pos_api/internal/models"
	"pos_api/internal/services"
	"pos_api/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) List(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		products, err := h.productService.GetProductsByCategory(category)
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, products)
		return
	}

	products, err := h.productService.GetAllProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.productService.GetProductByID(uint(id))
	if err != nil {
		response.Fail(c, http.StatusNotFound, "product not found")
		return
	}
	response.Success(c, http.StatusOK, product)
}

func (h *ProductHandler) LowStock(c *gin.Context) {
	threshold := 5
	if raw := c.Query("threshold"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			threshold = parsed
		}
	}

	products, err := h.productService.GetLowStockProducts(threshold)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

type productRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid product payload")
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if err := h.productService.CreateProduct(product); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.productService.GetProductByID(uint(id))
	if err != nil {
		response.Fail(c, http.StatusNotFound, "product not found")
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid product payload")
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock
	product.Category = req.Category
	product.ImageURL = req.ImageURL

	if err := h.productService.UpdateProduct(product); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	if _, err := h.productService.GetProductByID(uint(id)); err != nil {
		response.Fail(c, http.StatusNotFound, "product not found")
		return
	}

	if err := h.productService.DeleteProduct(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
