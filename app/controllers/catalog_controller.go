package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/vendora/app/services"
	"github.com/shashiranjanraj/vendora/pkg/response"
)

// CatalogController serves the public product catalogue.
type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController() *CatalogController {
	return &CatalogController{service: services.NewCatalogService()}
}

// Products returns the complete catalogue in one response. Clients filter
// and paginate locally.
func (c *CatalogController) Products(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.Products()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load products")
		return
	}
	response.Success(w, products)
}

func (c *CatalogController) Product(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := c.service.Product(uint(id))
	if err != nil {
		response.NotFound(w)
		return
	}
	response.Success(w, product)
}

func (c *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.service.Categories()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load categories")
		return
	}
	response.Success(w, categories)
}

// UploadImage accepts a raw image body and stores it for the product.
// Admin only.
func (c *CatalogController) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 5<<20))
	if err != nil {
		response.Error(w, http.StatusRequestEntityTooLarge, "image too large")
		return
	}

	filename := r.URL.Query().Get("filename")
	if filename == "" {
		filename = "image.jpg"
	}

	url, err := c.service.UploadImage(r.Context(), uint(id), filename, data)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not store image")
		return
	}

	response.Success(w, map[string]string{"image": url})
}
