package rpc

import (
	"context"

	"viewify/internal/model"
)

// ProductStore is the slice of the storage layer the products router uses.
type ProductStore interface {
	FindMany(ctx context.Context, userID *string) ([]model.Product, error)
	Create(ctx context.Context, product *model.Product) error
}

// GetManyInput optionally narrows the catalog to one owner.
type GetManyInput struct {
	UserID *string `json:"userId"`
}

// CreateProductInput is the full product shape the creation form submits.
// Archived exists as a stored status but is not accepted on the write path.
type CreateProductInput struct {
	UserID         *string `json:"userId"`
	Title          string  `json:"title" validate:"required,min=2"`
	Description    string  `json:"description" validate:"required"`
	Status         string  `json:"status" validate:"required,oneof=Active Draft"`
	Price          string  `json:"price" validate:"required,decimal"`
	CompareAtPrice int     `json:"compareAtPrice"`
	SKU            *string `json:"sku"`
	TrackInventory bool    `json:"trackInventory"`
	Inventory      string  `json:"inventory" validate:"required,decimal"`
	Category       string  `json:"category" validate:"required"`
	Tags           *string `json:"tags"`
}

// ProductsRouter exposes the product catalog procedures.
func ProductsRouter(store ProductStore) *Router {
	return NewRouter("products",
		NewQuery("getMany", func(ctx context.Context, _ Ctx, input GetManyInput) ([]model.Product, error) {
			return store.FindMany(ctx, input.UserID)
		}),
		NewMutation("create", func(ctx context.Context, _ Ctx, input CreateProductInput) (*model.Product, error) {
			product := &model.Product{
				Title:          input.Title,
				Description:    input.Description,
				Status:         model.ProductStatus(input.Status),
				Price:          input.Price,
				CompareAtPrice: input.CompareAtPrice,
				SKU:            input.SKU,
				TrackInventory: input.TrackInventory,
				Inventory:      input.Inventory,
				Category:       input.Category,
				Tags:           input.Tags,
				UserID:         input.UserID,
			}
			if err := store.Create(ctx, product); err != nil {
				return nil, err
			}
			return product, nil
		}),
	)
}
