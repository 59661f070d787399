package gallery

import (
	"context"
	"net/http"

	"github.com/showcase/catalog-api/app/api"
	"github.com/showcase/catalog-api/app/payload"
	"github.com/showcase/catalog-api/app/upload"
	"github.com/showcase/catalog-api/models"
)

const (
	defaultPerPage = 12
	itemNotFound   = "Gallery item not found"
)

type GalleryProvider interface {
	List(ctx context.Context, filters models.Filters, page models.Pagination) ([]models.GalleryItem, int64, error)
	Featured(ctx context.Context) ([]models.GalleryItem, error)
	GetByID(ctx context.Context, id uint) (*models.GalleryItem, error)
	Create(ctx context.Context, patch models.GalleryPatch) (*models.GalleryItem, error)
	Update(ctx context.Context, id uint, patch models.GalleryPatch) (*models.GalleryItem, error)
	Delete(ctx context.Context, id uint) error
}

type GalleryHandler struct {
	repo     GalleryProvider
	uploader upload.Uploader
}

func NewGalleryHandler(r GalleryProvider, u upload.Uploader) *GalleryHandler {
	return &GalleryHandler{repo: r, uploader: u}
}

func (h *GalleryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	page := api.ParsePagination(r, defaultPerPage)
	query := api.ParseFilters(r)
	filters := models.Filters{
		Category: query.Category,
		Featured: query.Featured,
	}

	items, total, err := h.repo.List(r.Context(), filters, page)
	if err != nil {
		api.Fail(w, r, err, itemNotFound)
		return
	}

	api.JSON(w, http.StatusOK, api.Page("items", api.Maps(items), total, page))
}

func (h *GalleryHandler) HandleGetFeatured(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.Featured(r.Context())
	if err != nil {
		api.Fail(w, r, err, itemNotFound)
		return
	}

	api.JSON(w, http.StatusOK, api.Maps(items))
}

func (h *GalleryHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, itemNotFound)
		return
	}

	item, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		api.Fail(w, r, err, itemNotFound)
		return
	}

	api.JSON(w, http.StatusOK, item.ToMap())
}

// HandleCreate requires a title and an image, given either as image_url or
// as an uploaded "image" file.
func (h *GalleryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	patch, err := h.decode(r)
	if err != nil {
		api.Fail(w, r, err, itemNotFound)
		return
	}

	item, err := h.repo.Create(r.Context(), patch)
	if err != nil {
		api.Fail(w, r, err, itemNotFound)
		return
	}

	api.JSON(w, http.StatusCreated, item.ToMap())
}

func (h *GalleryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, itemNotFound)
		return
	}

	patch, err := h.decode(r)
	if err != nil {
		api.Fail(w, r, err, itemNotFound)
		return
	}

	item, err := h.repo.Update(r.Context(), id, patch)
	if err != nil {
		api.Fail(w, r, err, itemNotFound)
		return
	}

	api.JSON(w, http.StatusOK, item.ToMap())
}

func (h *GalleryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, itemNotFound)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		api.Fail(w, r, err, itemNotFound)
		return
	}

	api.Message(w, http.StatusOK, "Gallery item deleted successfully")
}

func (h *GalleryHandler) decode(r *http.Request) (models.GalleryPatch, error) {
	var patch models.GalleryPatch

	in, err := payload.Decode(r)
	if err != nil {
		return patch, err
	}

	if patch.Title, err = in.String("title"); err != nil {
		return patch, err
	}
	if patch.Description, err = in.String("description"); err != nil {
		return patch, err
	}
	if patch.ImageURL, err = in.String("image_url"); err != nil {
		return patch, err
	}
	if patch.Category, err = in.String("category"); err != nil {
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
