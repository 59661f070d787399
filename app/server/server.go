// Package server wires the handlers into the HTTP routing table.
package server

import (
	"context"
	"net/http"

	"github.com/rs/cors"
	"github.com/showcase/catalog-api/app/admin"
	"github.com/showcase/catalog-api/app/api"
	"github.com/showcase/catalog-api/app/auth"
	"github.com/showcase/catalog-api/app/catalog"
	"github.com/showcase/catalog-api/app/categories"
	"github.com/showcase/catalog-api/app/config"
	"github.com/showcase/catalog-api/app/contact"
	"github.com/showcase/catalog-api/app/gallery"
	"github.com/showcase/catalog-api/app/logging"
	"github.com/showcase/catalog-api/app/services"
	"github.com/showcase/catalog-api/app/upload"
	"github.com/showcase/catalog-api/models"
	"gorm.io/gorm"
)

// NewRouter builds the full handler for the API: routes, admin guard, body
// size limit, CORS and request logging.
func NewRouter(cfg *config.Config, db *gorm.DB, uploader upload.Uploader) http.Handler {
	products := models.NewProductsRepository(db)
	gallerySource := models.NewGalleryRepository(db)

	catalogHandler := catalog.NewCatalogHandler(products, uploader)
	productCategories := categories.NewCategoryHandler(products)
	serviceHandler := services.NewServiceHandler(models.NewServicesRepository(db), uploader)
	galleryHandler := gallery.NewGalleryHandler(gallerySource, uploader)
	galleryCategories := categories.NewCategoryHandler(gallerySource)
	contactHandler := contact.NewContactHandler(models.NewContactRepository(db))
	adminHandler := admin.NewAdminHandler(products, func(ctx context.Context) error {
		return models.Migrate(db.WithContext(ctx))
	})

	guard := auth.RequireAdmin(cfg.AdminToken)
	limit := limitBody(cfg.MaxContentLength)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		api.JSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": cfg.ServiceName,
		})
	})
	mux.Handle("GET "+upload.URLPrefix, upload.FileServer(cfg.UploadFolder))

	mux.HandleFunc("GET /api/products", catalogHandler.HandleGet)
	mux.HandleFunc("GET /api/products/categories", productCategories.HandleGetAll)
	mux.HandleFunc("GET /api/products/{id}", catalogHandler.HandleGetProduct)

	mux.HandleFunc("GET /api/services", serviceHandler.HandleGet)
	mux.HandleFunc("GET /api/services/featured", serviceHandler.HandleGetFeatured)
	mux.HandleFunc("GET /api/services/{id}", serviceHandler.HandleGetService)

	mux.HandleFunc("GET /api/gallery", galleryHandler.HandleGet)
	mux.HandleFunc("GET /api/gallery/categories", galleryCategories.HandleGetAll)
	mux.HandleFunc("GET /api/gallery/featured", galleryHandler.HandleGetFeatured)
	mux.HandleFunc("GET /api/gallery/{id}", galleryHandler.HandleGetItem)

	mux.HandleFunc("POST /api/contact", limit(contactHandler.HandleSubmit))

	mux.HandleFunc("POST /api/admin/products", guard(limit(catalogHandler.HandleCreate)))
	mux.HandleFunc("PUT /api/admin/products/{id}", guard(limit(catalogHandler.HandleUpdate)))
	mux.HandleFunc("DELETE /api/admin/products/{id}", guard(catalogHandler.HandleDelete))

	mux.HandleFunc("POST /api/admin/services", guard(limit(serviceHandler.HandleCreate)))
	mux.HandleFunc("PUT /api/admin/services/{id}", guard(limit(serviceHandler.HandleUpdate)))
	mux.HandleFunc("DELETE /api/admin/services/{id}", guard(serviceHandler.HandleDelete))

	mux.HandleFunc("POST /api/admin/gallery", guard(limit(galleryHandler.HandleCreate)))
	mux.HandleFunc("PUT /api/admin/gallery/{id}", guard(limit(galleryHandler.HandleUpdate)))
	mux.HandleFunc("DELETE /api/admin/gallery/{id}", guard(galleryHandler.HandleDelete))

	mux.HandleFunc("GET /api/admin/contact-messages", guard(contactHandler.HandleGet))
	mux.HandleFunc("GET /api/admin/contact-messages/{id}", guard(contactHandler.HandleGetMessage))
	mux.HandleFunc("PUT /api/admin/contact-messages/{id}", guard(limit(contactHandler.HandleUpdate)))
	mux.HandleFunc("DELETE /api/admin/contact-messages/{id}", guard(contactHandler.HandleDelete))

	mux.HandleFunc("POST /api/admin/seed", guard(adminHandler.HandleSeed))
	mux.HandleFunc("POST /api/admin/init-db", guard(adminHandler.HandleInitDB))

	corsHandler := cors.New(corsOptions(cfg))

	return logging.Middleware(corsHandler.Handler(mux))
}

// limitBody caps the request body at max bytes. Reads past the limit fail
// with *http.MaxBytesError, which api.Fail reports as 413.
func limitBody(max int64) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > max {
				api.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, max)
			next(w, r)
		}
	}
}

// corsOptions allows the configured origins. With no origins configured every
// cross-origin request is refused; "*" has to be listed explicitly.
func corsOptions(cfg *config.Config) cors.Options {
	opts := cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", logging.RequestIDHeader},
		ExposedHeaders: []string{logging.RequestIDHeader},
	}
	if len(cfg.CORSOrigins) == 0 {
		opts.AllowOriginFunc = func(string) bool { return false }
	}
	return opts
}
