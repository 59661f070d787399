package services

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
	serviceNotFound = "Service not found"
)

type ServiceProvider interface {
	List(ctx context.Context, filters models.Filters, page models.Pagination) ([]models.Service, int64, error)
	Featured(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	Create(ctx context.Context, patch models.ServicePatch) (*models.Service, error)
	Update(ctx context.Context, id uint, patch models.ServicePatch) (*models.Service, error)
	Delete(ctx context.Context, id uint) error
}

type ServiceHandler struct {
	repo     ServiceProvider
	uploader upload.Uploader
}

func NewServiceHandler(r ServiceProvider, u upload.Uploader) *ServiceHandler {
	return &ServiceHandler{repo: r, uploader: u}
}

func (h *ServiceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	page := api.ParsePagination(r, defaultPerPage)
	filters := models.Filters{Featured: api.ParseFilters(r).Featured}

	services, total, err := h.repo.List(r.Context(), filters, page)
	if err != nil {
		api.Fail(w, r, err, serviceNotFound)
		return
	}

	api.JSON(w, http.StatusOK, api.Page("services", api.Maps(services), total, page))
}

func (h *ServiceHandler) HandleGetFeatured(w http.ResponseWriter, r *http.Request) {
	services, err := h.repo.Featured(r.Context())
	if err != nil {
		api.Fail(w, r, err, serviceNotFound)
		return
	}

	api.JSON(w, http.StatusOK, api.Maps(services))
}

func (h *ServiceHandler) HandleGetService(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, serviceNotFound)
		return
	}

	service, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		api.Fail(w, r, err, serviceNotFound)
		return
	}

	api.JSON(w, http.StatusOK, service.ToMap())
}

func (h *ServiceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	patch, err := h.decode(r)
	if err != nil {
		api.Fail(w, r, err, serviceNotFound)
		return
	}

	service, err := h.repo.Create(r.Context(), patch)
	if err != nil {
		api.Fail(w, r, err, serviceNotFound)
		return
	}

	api.JSON(w, http.StatusCreated, service.ToMap())
}

func (h *ServiceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, serviceNotFound)
		return
	}

	patch, err := h.decode(r)
	if err != nil {
		api.Fail(w, r, err, serviceNotFound)
		return
	}

	service, err := h.repo.Update(r.Context(), id, patch)
	if err != nil {
		api.Fail(w, r, err, serviceNotFound)
		return
	}

	api.JSON(w, http.StatusOK, service.ToMap())
}

func (h *ServiceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, serviceNotFound)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		api.Fail(w, r, err, serviceNotFound)
		return
	}

	api.Message(w, http.StatusOK, "Service deleted successfully")
}

func (h *ServiceHandler) decode(r *http.Request) (models.ServicePatch, error) {
	var patch models.ServicePatch

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
