package models

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewProductsRepository(newTestDB(t))

	created, err := repo.Create(ctx, ProductPatch{
		Name:     ptr("  Seat Cover "),
		Price:    ptr(decimal.RequireFromString("10.50")),
		Category: ptr("Seats"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.InStock, "products default to in stock")
	assert.False(t, created.Featured)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Seat Cover", got.Name)
	assert.Equal(t, "Seats", got.Category)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, 10.5, got.ToMap()["price"])
}

func TestProductsRepository_CreateValidation(t *testing.T) {
	repo := NewProductsRepository(newTestDB(t))

	testCases := []struct {
		name    string
		patch   ProductPatch
		message string
	}{
		{
			name:    "missing name",
			patch:   ProductPatch{Price: ptr(decimal.NewFromInt(1)), Category: ptr("A")},
			message: "name is required",
		},
		{
			name:    "blank name",
			patch:   ProductPatch{Name: ptr("   "), Price: ptr(decimal.NewFromInt(1)), Category: ptr("A")},
			message: "name is required",
		},
		{
			name:    "missing price",
			patch:   ProductPatch{Name: ptr("X"), Category: ptr("A")},
			message: "price is required",
		},
		{
			name:    "missing category",
			patch:   ProductPatch{Name: ptr("X"), Price: ptr(decimal.NewFromInt(1))},
			message: "category is required",
		},
		{
			name:    "negative price",
			patch:   ProductPatch{Name: ptr("X"), Price: ptr(decimal.NewFromInt(-1)), Category: ptr("A")},
			message: "price must not be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := repo.Create(context.Background(), tc.patch)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestProductsRepository_UpdateIsPartial(t *testing.T) {
	ctx := context.Background()
	repo := NewProductsRepository(newTestDB(t))

	created, err := repo.Create(ctx, ProductPatch{
		Name:     ptr("Headliner"),
		Price:    ptr(decimal.NewFromInt(300)),
		Category: ptr("Headliner"),
		ImageURL: ptr("/uploads/headliner.jpg"),
		Featured: ptr(true),
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, ProductPatch{Price: ptr(decimal.RequireFromString("10.5"))})
	require.NoError(t, err)
	assert.Equal(t, 10.5, updated.Price.InexactFloat64())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Headliner", got.Name)
	assert.Equal(t, "Headliner", got.Category)
	assert.Equal(t, "/uploads/headliner.jpg", got.ImageURL)
	assert.True(t, got.Featured)
	assert.True(t, got.InStock)
	assert.Equal(t, 10.5, got.Price.InexactFloat64())

	_, err = repo.Update(ctx, 9999, ProductPatch{Price: ptr(decimal.NewFromInt(1))})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductsRepository_ListFiltersAndPaginates(t *testing.T) {
	ctx := context.Background()
	repo := NewProductsRepository(newTestDB(t))

	for i, c := range []string{"Seats", "Seats", "seats", "Carpet", "Seats"} {
		_, err := repo.Create(ctx, ProductPatch{
			Name:     ptr("p"),
			Price:    ptr(decimal.NewFromInt(int64(i))),
			Category: ptr(c),
			Featured: ptr(i%2 == 0),
		})
		require.NoError(t, err)
	}

	products, total, err := repo.List(ctx, Filters{Category: "Seats"}, Pagination{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "Seats", p.Category)
	}
	assert.Equal(t, 2, Pages(total, 2))

	products, _, err = repo.List(ctx, Filters{Category: "Seats"}, Pagination{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, products, 1)

	products, total, err = repo.List(ctx, Filters{Featured: ptr(true)}, Pagination{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, p := range products {
		assert.True(t, p.Featured)
	}

	products, total, err = repo.List(ctx, Filters{Category: "Seats", Featured: ptr(false)}, Pagination{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, products, 1)
}

func TestProductsRepository_Categories(t *testing.T) {
	ctx := context.Background()
	repo := NewProductsRepository(newTestDB(t))

	for _, c := range []string{"Seats", "Carpet", "Seats"} {
		_, err := repo.Create(ctx, ProductPatch{Name: ptr("p"), Price: ptr(decimal.NewFromInt(1)), Category: ptr(c)})
		require.NoError(t, err)
	}

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Carpet", "Seats"}, categories)
}

func TestProductsRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewProductsRepository(newTestDB(t))

	created, err := repo.Create(ctx, ProductPatch{Name: ptr("p"), Price: ptr(decimal.NewFromInt(1)), Category: ptr("c")})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrNotFound)
}

func TestProductsRepository_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewProductsRepository(newTestDB(t))

	created, err := repo.Seed(ctx, SampleProducts())
	require.NoError(t, err)
	assert.Equal(t, len(SampleProducts()), created)

	created, err = repo.Seed(ctx, SampleProducts())
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	_, total, err := repo.List(ctx, Filters{}, Pagination{Page: 1, PerPage: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(len(SampleProducts())), total)
}
