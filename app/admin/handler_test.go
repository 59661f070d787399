package admin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/showcase/catalog-api/models"
	"github.com/stretchr/testify/assert"
)

type MockSeeder struct {
	Created int
	Err     error

	received []models.Product
}

func (m *MockSeeder) Seed(ctx context.Context, products []models.Product) (int, error) {
	m.received = products
	return m.Created, m.Err
}

func TestHandleSeed(t *testing.T) {
	tests := []struct {
		name       string
		seeder     *MockSeeder
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Empty store",
			seeder:     &MockSeeder{Created: 6},
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"Database seeded successfully with 6 products","count":6}`,
		},
		{
			name:       "Already seeded",
			seeder:     &MockSeeder{},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Database already seeded","count":0}`,
		},
		{
			name:       "Store failure",
			seeder:     &MockSeeder{Err: errors.New("seed products: locked")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"seed products: locked"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAdminHandler(tt.seeder, nil)
			w := httptest.NewRecorder()

			handler.HandleSeed(w, httptest.NewRequest("POST", "/api/admin/seed", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Len(t, tt.seeder.received, len(models.SampleProducts()))
		})
	}
}

func TestHandleInitDB(t *testing.T) {
	t.Run("Migrates", func(t *testing.T) {
		calls := 0
		handler := NewAdminHandler(&MockSeeder{}, func(ctx context.Context) error {
			calls++
			return nil
		})
		w := httptest.NewRecorder()

		handler.HandleInitDB(w, httptest.NewRequest("POST", "/api/admin/init-db", nil))

		assert.Equal(t, 1, calls)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"message":"Database schema initialized"}`, w.Body.String())
	})

	t.Run("Migration failure", func(t *testing.T) {
		handler := NewAdminHandler(&MockSeeder{}, func(ctx context.Context) error {
			return errors.New("migrate: permission denied")
		})
		w := httptest.NewRecorder()

		handler.HandleInitDB(w, httptest.NewRequest("POST", "/api/admin/init-db", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"migrate: permission denied"}`, w.Body.String())
	})
}
