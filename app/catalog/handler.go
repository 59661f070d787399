package catalog

import (
	"context"
	"net/http"

	"github.com/showcase/catalog-api/app/api"
	"github.com/showcase/catalog-api/app/payload"
	"github.com/showcase/catalog-api/app/upload"
	"github.com/showcase/catalog-api/models"
)

const (
	defaultPerPage  = 12
	productNotFound = "Product not found"
)

type ProductProvider interface {
	List(ctx context.Context, filters models.Filters, page models.Pagination) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, patch models.ProductPatch) (*models.Product, error)
	Update(ctx context.Context, id uint, patch models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
}

type CatalogHandler struct {
	repo     ProductProvider
	uploader upload.Uploader
}

func NewCatalogHandler(r ProductProvider, u upload.Uploader) *CatalogHandler {
	return &CatalogHandler{
		repo:     r,
		uploader: u,
	}
}

// HandleGet lists products, optionally filtered by category and featured.
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	page := api.ParsePagination(r, defaultPerPage)
	query := api.ParseFilters(r)
	filters := models.Filters{
		Category: query.Category,
		Featured: query.Featured,
	}

	products, total, err := h.repo.List(r.Context(), filters, page)
	if err != nil {
		api.Fail(w, r, err, productNotFound)
		return
	}

	api.JSON(w, http.StatusOK, api.Page("products", api.Maps(products), total, page))
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, productNotFound)
		return
	}

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		api.Fail(w, r, err, productNotFound)
		return
	}

	api.JSON(w, http.StatusOK, product.ToMap())
}

func (h *CatalogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	patch, err := h.decode(r)
	if err != nil {
		api.Fail(w, r, err, productNotFound)
		return
	}

	product, err := h.repo.Create(r.Context(), patch)
	if err != nil {
		api.Fail(w, r, err, productNotFound)
		return
	}

	api.JSON(w, http.StatusCreated, product.ToMap())
}

// HandleUpdate changes only the fields present in the request.
func (h *CatalogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, productNotFound)
		return
	}

	patch, err := h.decode(r)
	if err != nil {
		api.Fail(w, r, err, productNotFound)
		return
	}

	product, err := h.repo.Update(r.Context(), id, patch)
	if err != nil {
		api.Fail(w, r, err, productNotFound)
		return
	}

	api.JSON(w, http.StatusOK, product.ToMap())
}

func (h *CatalogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, productNotFound)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		api.Fail(w, r, err, productNotFound)
		return
	}

	api.Message(w, http.StatusOK, "Product deleted successfully")
}

// decode reads the product fields from the body. An uploaded "image" file
// takes precedence over image_url.
func (h *CatalogHandler) decode(r *http.Request) (models.ProductPatch, error) {
	var patch models.ProductPatch

	in, err := payload.Decode(r)
	if err != nil {
		return patch, err
	}

	if patch.Name, err = in.String("name"); err != nil {
		return patch, err
	}
	if patch.Description, err = in.String("description"); err != nil {
		return patch, err
	}
	if patch.Price, err = in.Decimal("price"); err != nil {
		return patch, err
	}
	if patch.Category, err = in.String("category"); err != nil {
		return patch, err
	}
	if patch.ImageURL, err = in.String("image_url"); err != nil {
		return patch, err
	}
	if patch.InStock, err = in.Bool("in_stock"); err != nil {
		return patch, err
	}
	if patch.Featured, err = in.Bool("featured"); err != nil {
		return patch, err
	}

	if file := payload.File(r, "image"); file != nil {
		url, err := h.uploader.Upload(r.Context(), file)
		if err != nil {
			return patch, err
		}
		patch.ImageURL = &url
	}
	return patch, nil
}
