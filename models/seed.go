package models

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SampleProducts is the catalog used to populate an empty store.
func SampleProducts() []Product {
	return []Product{
		{
			Name:        "Custom Seat Upholstery - Premium Leather",
			Description: "Complete custom seat upholstery using premium grade leather. Perfect for restoring classic vehicles or upgrading modern interiors.",
			Price:       decimal.RequireFromString("899.99"),
			Category:    "Seat Upholstery",
			ImageURL:    "https://source.unsplash.com/oUBsRHzWei8/1200x800",
			InStock:     true,
			Featured:    true,
		},
		{
			Name:        "Dashboard Restoration Kit",
			Description: "Complete dashboard restoration package including cleaning, repair, and protective coating. Restores original look and feel.",
			Price:       decimal.RequireFromString("599.99"),
			Category:    "Dashboard",
			ImageURL:    "https://source.unsplash.com/8syAWhHxbf0/1200x800",
			InStock:     true,
			Featured:    true,
		},
		{
			Name:        "Door Panel Upholstery Set",
			Description: "Custom door panel upholstery with premium fabrics. Includes installation guidance and high-quality stitching.",
			Price:       decimal.RequireFromString("449.99"),
			Category:    "Door Panels",
			ImageURL:    "https://source.unsplash.com/c_SwKUwevu0/1200x800",
			InStock:     true,
			Featured:    true,
		},
		{
			Name:        "Headliner Replacement",
			Description: "Complete headliner replacement service with professional installation. Choose from various fabric options.",
			Price:       decimal.RequireFromString("349.99"),
			Category:    "Headliner",
			ImageURL:    "https://source.unsplash.com/ewpuwoLoMvk/1200x800",
			InStock:     true,
			Featured:    true,
		},
		{
			Name:        "Custom Console Upholstery",
			Description: "Premium console and armrest upholstery for modern comfort and style.",
			Price:       decimal.RequireFromString("279.99"),
			Category:    "Console",
			ImageURL:    "https://source.unsplash.com/4icreuz-Qv0/1200x800",
			InStock:     true,
		},
		{
			Name:        "Carpet Kit - Full Interior",
			Description: "Complete interior carpet replacement kit. High-quality materials that match OEM specifications.",
			Price:       decimal.RequireFromString("699.99"),
			Category:    "Carpet",
			ImageURL:    "https://source.unsplash.com/6q7OewPW6rQ/1200x800",
			InStock:     true,
		},
	}
}

// Seed inserts products only when the products table is empty and returns
// how many rows were created. On postgres the table is locked for the
// duration of the transaction so concurrent seeds cannot both insert.
func (r *ProductsRepository) Seed(ctx context.Context, products []Product) (int, error) {
	created := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("LOCK TABLE products IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
				return err
			}
		}

		var count int64
		if err := tx.Model(&Product{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 || len(products) == 0 {
			return nil
		}

		rows := make([]Product, len(products))
		copy(rows, products)
		for i := range rows {
			rows[i].ID = 0
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		created = len(rows)
		return nil
	})
	if err != nil {
		return 0, wrap(err, "seed products")
	}
	return created, nil
}
