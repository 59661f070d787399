package categories

import (
	"context"
	"net/http"

	"github.com/showcase/catalog-api/app/api"
)

// CategoryProvider lists the distinct categories in use by one resource.
type CategoryProvider interface {
	Categories(ctx context.Context) ([]string, error)
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

// HandleGetAll writes the categories as a plain JSON array.
func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.Categories(r.Context())
	if err != nil {
		api.Fail(w, r, err, "")
		return
	}
	if categories == nil {
		categories = []string{}
	}

	api.JSON(w, http.StatusOK, categories)
}
