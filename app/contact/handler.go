package contact

import (
	"context"
	"net/http"

	"github.com/showcase/catalog-api/app/api"
	"github.com/showcase/catalog-api/app/payload"
	"github.com/showcase/catalog-api/models"
)

const (
	defaultPerPage  = 20
	messageNotFound = "Contact message not found"
)

type MessageProvider interface {
	List(ctx context.Context, filters models.Filters, page models.Pagination) ([]models.ContactMessage, int64, error)
	GetByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	Create(ctx context.Context, patch models.ContactPatch) (*models.ContactMessage, error)
	Update(ctx context.Context, id uint, patch models.ContactPatch) (*models.ContactMessage, error)
	Delete(ctx context.Context, id uint) error
}

type ContactHandler struct {
	repo MessageProvider
}

func NewContactHandler(r MessageProvider) *ContactHandler {
	return &ContactHandler{repo: r}
}

// HandleSubmit stores a public contact form submission.
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	in, err := payload.Decode(r)
	if err != nil {
		api.Fail(w, r, err, messageNotFound)
		return
	}
	if len(in) == 0 {
		api.Error(w, http.StatusBadRequest, "No data provided")
		return
	}

	var patch models.ContactPatch
	for _, f := range []struct {
		key string
		dst **string
	}{
		{"name", &patch.Name},
		{"email", &patch.Email},
		{"phone", &patch.Phone},
		{"subject", &patch.Subject},
		{"message", &patch.Message},
	} {
		if *f.dst, err = in.String(f.key); err != nil {
			api.Fail(w, r, err, messageNotFound)
			return
		}
	}

	message, err := h.repo.Create(r.Context(), patch)
	if err != nil {
		api.Fail(w, r, err, messageNotFound)
		return
	}

	api.JSON(w, http.StatusCreated, map[string]any{
		"message": "Contact form submitted successfully",
		"id":      message.ID,
	})
}

// HandleGet lists messages newest first, optionally by status.
func (h *ContactHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	page := api.ParsePagination(r, defaultPerPage)
	filters := models.Filters{Status: api.ParseFilters(r).Status}

	messages, total, err := h.repo.List(r.Context(), filters, page)
	if err != nil {
		api.Fail(w, r, err, messageNotFound)
		return
	}

	api.JSON(w, http.StatusOK, api.Page("messages", api.Maps(messages), total, page))
}

func (h *ContactHandler) HandleGetMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, messageNotFound)
		return
	}

	message, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		api.Fail(w, r, err, messageNotFound)
		return
	}

	api.JSON(w, http.StatusOK, message.ToMap())
}

// HandleUpdate sets the status of a message. Any text is accepted.
func (h *ContactHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, messageNotFound)
		return
	}

	in, err := payload.Decode(r)
	if err != nil {
		api.Fail(w, r, err, messageNotFound)
		return
	}

	var patch models.ContactPatch
	if patch.Status, err = in.String("status"); err != nil {
		api.Fail(w, r, err, messageNotFound)
		return
	}

	message, err := h.repo.Update(r.Context(), id, patch)
	if err != nil {
		api.Fail(w, r, err, messageNotFound)
		return
	}

	api.JSON(w, http.StatusOK, message.ToMap())
}

func (h *ContactHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, messageNotFound)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		api.Fail(w, r, err, messageNotFound)
		return
	}

	api.Message(w, http.StatusOK, "Contact message deleted successfully")
}
