// Package seed loads the demo catalog the dashboard ships with.
package seed

import (
	"context"
	"fmt"

	"viewify/internal/model"
	"viewify/internal/repository"
)

func strptr(s string) *string { return &s }

// Catalog returns the sample products, unowned. Assign UserID before
// inserting to attach them to a merchant.
func Catalog() []model.Product {
	return []model.Product{
		{
			Title:          "Wireless Headphones",
			Description:    "Over-ear wireless headphones with active noise cancellation and 30-hour battery life.",
			Status:         model.StatusActive,
			Price:          "129.99",
			CompareAtPrice: 15999,
			SKU:            strptr("WH-1000"),
			TrackInventory: true,
			Inventory:      "45",
			Category:       "Electronics",
			Tags:           strptr("audio,wireless,featured"),
		},
		{
			Title:          "Smart Watch",
			Description:    "Fitness tracking smart watch with heart-rate monitor and GPS.",
			Status:         model.StatusActive,
			Price:          "199.99",
			CompareAtPrice: 24999,
			SKU:            strptr("SW-2100"),
			TrackInventory: true,
			Inventory:      "23",
			Category:       "Electronics",
			Tags:           strptr("wearables,fitness"),
		},
		{
			Title:          "Running Shoes",
			Description:    "Lightweight running shoes with responsive cushioning.",
			Status:         model.StatusActive,
			Price:          "89.99",
			CompareAtPrice: 0,
			SKU:            strptr("RS-300"),
			TrackInventory: true,
			Inventory:      "120",
			Category:       "Footwear",
			Tags:           strptr("running,sport"),
		},
		{
			Title:          "Laptop Backpack",
			Description:    "Water-resistant backpack with padded 15-inch laptop compartment.",
			Status:         model.StatusDraft,
			Price:          "49.99",
			CompareAtPrice: 5999,
			SKU:            strptr("LB-450"),
			TrackInventory: false,
			Inventory:      "0",
			Category:       "Accessories",
			Tags:           nil,
		},
		{
			Title:          "Coffee Maker",
			Description:    "12-cup programmable coffee maker with thermal carafe.",
			Status:         model.StatusDraft,
			Price:          "74.99",
			CompareAtPrice: 8999,
			SKU:            strptr("CM-800"),
			TrackInventory: true,
			Inventory:      "8",
			Category:       "Home & Kitchen",
			Tags:           strptr("kitchen"),
		},
	}
}

// Run inserts the demo catalog for the given owner, skipping products whose
// SKU already exists. Returns the number of rows inserted.
func Run(ctx context.Context, products repository.ProductRepository, ownerID *string) (int, error) {
	inserted := 0
	for _, p := range Catalog() {
		if p.SKU != nil {
			exists, err := products.ExistsBySKU(ctx, *p.SKU)
			if err != nil {
				return inserted, fmt.Errorf("check sku %s: %w", *p.SKU, err)
			}
			if exists {
				continue
			}
		}
		p.UserID = ownerID
		if err := products.Create(ctx, &p); err != nil {
			return inserted, fmt.Errorf("insert %s: %w", p.Title, err)
		}
		inserted++
	}
	return inserted, nil
}
