package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductStatus is the catalog state of a product.
type ProductStatus string

const (
	StatusActive   ProductStatus = "Active"
	StatusDraft    ProductStatus = "Draft"
	StatusArchived ProductStatus = "Archived"
)

// Product represents a catalog entry. Price and inventory are stored as
// decimal text, matching what the dashboard submits. UserID is nullable;
// nothing above the schema enforces ownership.
type Product struct {
	ID             uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	Title          string        `json:"title" gorm:"size:255;not null;index"`
	Description    string        `json:"description" gorm:"type:text;not null"`
	Status         ProductStatus `json:"status" gorm:"size:20;not null;index"`
	Price          string        `json:"price" gorm:"size:32;not null"`
	CompareAtPrice int           `json:"compareAtPrice" gorm:"not null;default:0"`
	SKU            *string       `json:"sku" gorm:"size:64"`
	TrackInventory bool          `json:"trackInventory" gorm:"default:false"`
	Inventory      string        `json:"inventory" gorm:"size:32;not null"`
	Category       string        `json:"category" gorm:"size:100;not null"`
	Tags           *string       `json:"tags" gorm:"size:255"`
	UserID         *string       `json:"userId" gorm:"type:char(36);index"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
