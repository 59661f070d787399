package models

import (
	"context"

	"gorm.io/gorm"
)

type ServicesRepository struct {
	db *gorm.DB
}

func NewServicesRepository(db *gorm.DB) *ServicesRepository {
	return &ServicesRepository{db: db}
}

// List returns services with featured ones first, newest first within each group.
func (r *ServicesRepository) List(ctx context.Context, filters Filters, page Pagination) ([]Service, int64, error) {
	query := filters.apply(r.db.WithContext(ctx).Model(&Service{}))
	services, total, err := paginate[Service](query, page, "featured DESC, created_at DESC, id DESC")
	return services, total, wrap(err, "list services")
}

func (r *ServicesRepository) Featured(ctx context.Context) ([]Service, error) {
	services := make([]Service, 0)
	err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("created_at DESC, id DESC").
		Find(&services).Error
	return services, wrap(err, "list featured services")
}

func (r *ServicesRepository) GetByID(ctx context.Context, id uint) (*Service, error) {
	service, err := findByID[Service](r.db.WithContext(ctx), id)
	return service, wrap(err, "get service")
}

func (r *ServicesRepository) Create(ctx context.Context, patch ServicePatch) (*Service, error) {
	if err := patch.ValidateCreate(); err != nil {
		return nil, err
	}
	service := &Service{}
	patch.apply(service)
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return nil, wrap(err, "create service")
	}
	return service, nil
}

func (r *ServicesRepository) Update(ctx context.Context, id uint, patch ServicePatch) (*Service, error) {
	var service *Service
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if service, err = findByID[Service](tx, id); err != nil {
			return err
		}
		patch.apply(service)
		return tx.Save(service).Error
	})
	if err != nil {
		return nil, wrap(err, "update service")
	}
	return service, nil
}

func (r *ServicesRepository) Delete(ctx context.Context, id uint) error {
	return wrap(deleteByID[Service](r.db.WithContext(ctx), id), "delete service")
}
