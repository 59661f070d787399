package models

import (
	"context"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// List returns messages newest first, optionally restricted to one status.
func (r *ContactRepository) List(ctx context.Context, filters Filters, page Pagination) ([]ContactMessage, int64, error) {
	query := filters.apply(r.db.WithContext(ctx).Model(&ContactMessage{}))
	messages, total, err := paginate[ContactMessage](query, page, "created_at DESC, id DESC")
	return messages, total, wrap(err, "list contact messages")
}

func (r *ContactRepository) GetByID(ctx context.Context, id uint) (*ContactMessage, error) {
	message, err := findByID[ContactMessage](r.db.WithContext(ctx), id)
	return message, wrap(err, "get contact message")
}

// Create stores a new submission. The status is always reset to "new".
func (r *ContactRepository) Create(ctx context.Context, patch ContactPatch) (*ContactMessage, error) {
	if err := patch.ValidateCreate(); err != nil {
		return nil, err
	}
	patch.Status = nil
	message := &ContactMessage{Status: StatusNew}
	patch.apply(message)
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, wrap(err, "create contact message")
	}
	return message, nil
}

func (r *ContactRepository) Update(ctx context.Context, id uint, patch ContactPatch) (*ContactMessage, error) {
	var message *ContactMessage
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if message, err = findByID[ContactMessage](tx, id); err != nil {
			return err
		}
		patch.apply(message)
		return tx.Save(message).Error
	})
	if err != nil {
		return nil, wrap(err, "update contact message")
	}
	return message, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id uint) error {
	return wrap(deleteByID[ContactMessage](r.db.WithContext(ctx), id), "delete contact message")
}
