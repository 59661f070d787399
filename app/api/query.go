package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/showcase/catalog-api/models"
)

// MaxPerPage caps per_page on every listing.
const MaxPerPage = 100

// ParsePagination reads page and per_page. Missing or invalid values fall
// back to page 1 and defaultPerPage.
func ParsePagination(r *http.Request, defaultPerPage int) models.Pagination {
	page := 1
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}

	perPage := defaultPerPage
	if pp, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && pp > 0 {
		perPage = min(pp, MaxPerPage)
	}

	return models.Pagination{Page: page, PerPage: perPage}
}

// ParseFilters reads the category, featured and status query parameters.
// An unparsable featured value is ignored.
func ParseFilters(r *http.Request) models.Filters {
	q := r.URL.Query()
	filters := models.Filters{
		Category: q.Get("category"),
		Status:   q.Get("status"),
	}
	if f := strings.TrimSpace(q.Get("featured")); f != "" {
		if featured, err := strconv.ParseBool(f); err == nil {
			filters.Featured = &featured
		}
	}
	return filters
}
