package admin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/showcase/catalog-api/app/api"
	"github.com/showcase/catalog-api/models"
	"go.uber.org/zap"
)

// Seeder populates an empty product table.
type Seeder interface {
	Seed(ctx context.Context, products []models.Product) (int, error)
}

// AdminHandler serves the store maintenance endpoints.
type AdminHandler struct {
	seeder  Seeder
	migrate func(ctx context.Context) error
	catalog func() []models.Product
}

func NewAdminHandler(s Seeder, migrate func(ctx context.Context) error) *AdminHandler {
	return &AdminHandler{
		seeder:  s,
		migrate: migrate,
		catalog: models.SampleProducts,
	}
}

// HandleSeed inserts the sample catalog when there are no products yet.
func (h *AdminHandler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	created, err := h.seeder.Seed(r.Context(), h.catalog())
	if err != nil {
		api.Fail(w, r, err, "")
		return
	}

	if created == 0 {
		api.JSON(w, http.StatusOK, map[string]any{
			"message": "Database already seeded",
			"count":   0,
		})
		return
	}

	zap.L().Info("seeded products", zap.Int("count", created))
	api.JSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("Database seeded successfully with %d products", created),
		"count":   created,
	})
}

// HandleInitDB creates any missing tables.
func (h *AdminHandler) HandleInitDB(w http.ResponseWriter, r *http.Request) {
	if err := h.migrate(r.Context()); err != nil {
		api.Fail(w, r, err, "")
		return
	}

	api.Message(w, http.StatusCreated, "Database schema initialized")
}
