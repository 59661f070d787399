// Package api holds the JSON response helpers shared by every handler.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/showcase/catalog-api/models"
	"go.uber.org/zap"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

// Error writes {"error": message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Message writes {"message": message}.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// Fail maps err onto the error taxonomy: validation failures are 400,
// missing records 404, oversized bodies 413 and everything else 500
// with the error text echoed back.
func Fail(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var tooLarge *http.MaxBytesError
	switch {
	case models.IsValidation(err):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		Error(w, http.StatusNotFound, notFound)
	case errors.As(err, &tooLarge):
		Error(w, http.StatusRequestEntityTooLarge, "request body too large")
	default:
		zap.L().Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		Error(w, http.StatusInternalServerError, err.Error())
	}
}

// Page is the envelope for paginated listings.
func Page(key string, items []map[string]any, total int64, page models.Pagination) map[string]any {
	return map[string]any{
		key:            items,
		"total":        total,
		"pages":        models.Pages(total, page.PerPage),
		"current_page": page.Page,
	}
}

// Maps serializes every row with its ToMap method.
func Maps[T any, P interface {
	*T
	ToMap() map[string]any
}](rows []T) []map[string]any {
	out := make([]map[string]any, len(rows))
	for i := range rows {
		out[i] = P(&rows[i]).ToMap()
	}
	return out
}

// PathID parses the {id} path value. ok is false for anything that is not
// a positive integer.
func PathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
