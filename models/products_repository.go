package models

import (
	"context"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) List(ctx context.Context, filters Filters, page Pagination) ([]Product, int64, error) {
	query := filters.apply(r.db.WithContext(ctx).Model(&Product{}))
	products, total, err := paginate[Product](query, page, "id")
	return products, total, wrap(err, "list products")
}

func (r *ProductsRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	product, err := findByID[Product](r.db.WithContext(ctx), id)
	return product, wrap(err, "get product")
}

// Categories returns the distinct product categories currently in use.
func (r *ProductsRepository) Categories(ctx context.Context) ([]string, error) {
	categories, err := distinctCategories(r.db.WithContext(ctx), &Product{})
	return categories, wrap(err, "list product categories")
}

// Create inserts a new product. Products are in stock unless the patch says otherwise.
func (r *ProductsRepository) Create(ctx context.Context, patch ProductPatch) (*Product, error) {
	if err := patch.ValidateCreate(); err != nil {
		return nil, err
	}
	product := &Product{InStock: true}
	patch.apply(product)
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, wrap(err, "create product")
	}
	return product, nil
}

func (r *ProductsRepository) Update(ctx context.Context, id uint, patch ProductPatch) (*Product, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}
	var product *Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if product, err = findByID[Product](tx, id); err != nil {
			return err
		}
		patch.apply(product)
		return tx.Save(product).Error
	})
	if err != nil {
		return nil, wrap(err, "update product")
	}
	return product, nil
}

func (r *ProductsRepository) Delete(ctx context.Context, id uint) error {
	return wrap(deleteByID[Product](r.db.WithContext(ctx), id), "delete product")
}
