package services

import (
	"errors"
	"log"
	"time"

	"pos_api/internal/models"
	"pos_api/internal/repository"

	"gorm.io/gorm"
)

type ProductService interface {
	CreateProduct(product *models.Product) error
	GetProductByID(id uint) (*models.Product, error)
	GetAllProducts() ([]models.Product, error)
	GetProductsByCategory(category string) ([]models.Product, error)
	GetLowStockProducts(threshold int) ([]models.Product, error)
	UpdateProduct(product *models.Product) error
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
	cache       CatalogCache
	cacheTTL    time.Duration
}

func NewProductService(productRepo repository.ProductRepository, cache CatalogCache, cacheTTL time.Duration) ProductService {
	return &productService{productRepo: productRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *productService) CreateProduct(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	_, err := s.productRepo.GetByNameUnscoped(product.Name)
	if err == nil {
		return ErrProductNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.productRepo.Create(product); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *productService) GetProductByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// GetAllProducts serves the storefront list through the Redis cache when
// one is configured.
func (s *productService) GetAllProducts() ([]models.Product, error) {
	if s.cache != nil {
		var cached []models.Product
		if err := s.cache.GetProducts(&cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(products, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache product list: %v", err)
		}
	}
	return products, nil
}

func (s *productService) GetProductsByCategory(category string) ([]models.Product, error) {
	if !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	return s.productRepo.GetByCategory(category)
}

func (s *productService) GetLowStockProducts(threshold int) ([]models.Product, error) {
	if threshold < 0 {
		threshold = 0
	}
	return s.productRepo.GetLowStock(threshold)
}

func (s *productService) UpdateProduct(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	existing, err := s.productRepo.GetByNameUnscoped(product.Name)
	if err == nil && existing.ID != product.ID {
		return ErrProductNameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.productRepo.Update(product); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *productService) DeleteProduct(id uint) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *productService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProducts(); err != nil {
		log.Printf("Warning: failed to invalidate product cache: %v", err)
	}
}

func validateProduct(product *models.Product) error {
	if product.Price <= 0 {
		return ErrInvalidPrice
	}
	if product.Stock < 0 {
		return ErrInvalidStock
	}
	if product.Category == "" {
		product.Category = string(models.CategoryOther)
	}
	if !models.ValidCategory(product.Category) {
		return ErrInvalidCategory
	}
	return nil
}
