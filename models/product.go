package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:200;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category    string          `gorm:"size:100;index"`
	ImageURL    string          `gorm:"size:1024"`
	InStock     bool            `gorm:"not null"`
	Featured    bool            `gorm:"not null"`
	CreatedAt   time.Time
}

func (p *Product) TableName() string {
	return "products"
}

// ToMap returns the public key/value representation of the product.
func (p *Product) ToMap() map[string]any {
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.InexactFloat64(),
		"category":    p.Category,
		"image_url":   p.ImageURL,
		"in_stock":    p.InStock,
		"featured":    p.Featured,
		"created_at":  formatTime(p.CreatedAt),
	}
}

// ProductPatch carries the product fields present in a request.
// A nil field is left untouched on update.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	ImageURL    *string
	InStock     *bool
	Featured    *bool
}

// ValidateCreate checks the fields a new product must carry.
func (p ProductPatch) ValidateCreate() error {
	if blank(p.Name) {
		return Required("name")
	}
	if p.Price == nil {
		return Required("price")
	}
	if blank(p.Category) {
		return Required("category")
	}
	return p.validate()
}

func (p ProductPatch) validate() error {
	if p.Price != nil && p.Price.IsNegative() {
		return Invalid("price", "must not be negative")
	}
	return nil
}

func (p ProductPatch) apply(dst *Product) {
	if p.Name != nil {
		dst.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		dst.Description = strings.TrimSpace(*p.Description)
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Category != nil {
		dst.Category = strings.TrimSpace(*p.Category)
	}
	if p.ImageURL != nil {
		dst.ImageURL = strings.TrimSpace(*p.ImageURL)
	}
	if p.InStock != nil {
		dst.InStock = *p.InStock
	}
	if p.Featured != nil {
		dst.Featured = *p.Featured
	}
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
