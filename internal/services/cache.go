package services

import "time"

// CatalogCache is the slice of the Redis client the services need. It is
// optional: every service tolerates a nil cache and falls through to the
// database.
type CatalogCache interface {
	SetProducts(value interface{}, ttl time.Duration) error
	GetProducts(dest interface{}) error
	InvalidateProducts() error
	IncrDailyOrders(date string) error
	GetDailyOrders(date string) (int, error)
}
