package models

import (
	"gorm.io/gorm"
)

// Pagination selects one page of a listing. Page is 1-based.
type Pagination struct {
	Page    int
	PerPage int
}

func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// Pages returns ceil(total / perPage).
func Pages(total int64, perPage int) int {
	if perPage < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// paginate counts the filtered query and then loads the requested page.
// order is applied after the count.
func paginate[T any](query *gorm.DB, page Pagination, order string) ([]T, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]T, 0, page.PerPage)
	if err := query.Order(order).Offset(page.Offset()).Limit(page.PerPage).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
