package models

import (
	"context"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) List(ctx context.Context, filters Filters, page Pagination) ([]GalleryItem, int64, error) {
	query := filters.apply(r.db.WithContext(ctx).Model(&GalleryItem{}))
	items, total, err := paginate[GalleryItem](query, page, "id")
	return items, total, wrap(err, "list gallery items")
}

func (r *GalleryRepository) Featured(ctx context.Context) ([]GalleryItem, error) {
	items := make([]GalleryItem, 0)
	err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	return items, wrap(err, "list featured gallery items")
}

func (r *GalleryRepository) Categories(ctx context.Context) ([]string, error) {
	categories, err := distinctCategories(r.db.WithContext(ctx), &GalleryItem{})
	return categories, wrap(err, "list gallery categories")
}

func (r *GalleryRepository) GetByID(ctx context.Context, id uint) (*GalleryItem, error) {
	item, err := findByID[GalleryItem](r.db.WithContext(ctx), id)
	return item, wrap(err, "get gallery item")
}

func (r *GalleryRepository) Create(ctx context.Context, patch GalleryPatch) (*GalleryItem, error) {
	if err := patch.ValidateCreate(); err != nil {
		return nil, err
	}
	item := &GalleryItem{}
	patch.apply(item)
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, wrap(err, "create gallery item")
	}
	return item, nil
}

func (r *GalleryRepository) Update(ctx context.Context, id uint, patch GalleryPatch) (*GalleryItem, error) {
	var item *GalleryItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if item, err = findByID[GalleryItem](tx, id); err != nil {
			return err
		}
		patch.apply(item)
		return tx.Save(item).Error
	})
	if err != nil {
		return nil, wrap(err, "update gallery item")
	}
	return item, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id uint) error {
	return wrap(deleteByID[GalleryItem](r.db.WithContext(ctx), id), "delete gallery item")
}
