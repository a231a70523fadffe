package repository

import (
	"context"

	"gorm.io/gorm"

	"viewify/internal/model"
)

// ProductRepository defines product persistence operations. These are the
// only statements the procedure layer ever issues against products.
type ProductRepository interface {
	FindMany(ctx context.Context, userID *string) ([]model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// FindMany returns all products, optionally filtered to one owner, newest
// first. No pagination: the dashboard renders the full catalog.
func (r *productRepository) FindMany(ctx context.Context, userID *string) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	var products []model.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts one product row. A single insert, so atomicity comes from
// the statement itself.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// ExistsBySKU reports whether any product already carries the SKU. Used by
// seeding only; the create procedure performs no duplicate check.
func (r *productRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Where("sku = ?", sku).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
