package models

import (
	stderrors "errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Filters are optional equality predicates for listings.
// Empty strings and nil pointers are ignored.
type Filters struct {
	Category string
	Featured *bool
	Status   string
}

func (f Filters) apply(query *gorm.DB) *gorm.DB {
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Featured != nil {
		query = query.Where("featured = ?", *f.Featured)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	return query
}

func findByID[T any](db *gorm.DB, id uint) (*T, error) {
	var row T
	if err := db.First(&row, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func deleteByID[T any](db *gorm.DB, id uint) error {
	res := db.Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// distinctCategories lists the non-empty categories in use by model.
func distinctCategories(db *gorm.DB, model any) ([]string, error) {
	categories := make([]string, 0)
	err := db.Model(model).
		Where("category IS NOT NULL AND category <> ''").
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

// wrap annotates storage errors while letting taxonomy errors through untouched.
func wrap(err error, op string) error {
	if err == nil || stderrors.Is(err, ErrNotFound) || IsValidation(err) {
		return err
	}
	return errors.Wrap(err, op)
}
