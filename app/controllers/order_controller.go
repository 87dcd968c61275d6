package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/services"
	"github.com/shashiranjanraj/vendora/pkg/bind"
	"github.com/shashiranjanraj/vendora/pkg/middleware"
	"github.com/shashiranjanraj/vendora/pkg/response"
	"github.com/shashiranjanraj/vendora/pkg/validate"
)

// OrderController exposes checkout and order history for authenticated
// buyers.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

type checkoutRequest struct {
	Items []services.CheckoutItem `json:"items" validate:"required"`
}

func (c *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var body checkoutRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Place(userID, body.Items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder):
			response.Error(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, services.ErrOutOfStock):
			response.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(w, http.StatusUnprocessableEntity, "unknown product in order")
		default:
			response.Error(w, http.StatusInternalServerError, "could not place order")
		}
		return
	}

	response.Created(w, order)
}

// orderSummary is the order-history row shape API clients bind.
type orderSummary struct {
	Number    string             `json:"number"`
	Status    string             `json:"status"`
	Total     float64            `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []models.OrderItem `json:"items"`
}

func summarize(orders []models.Order) []orderSummary {
	out := make([]orderSummary, len(orders))
	for i, o := range orders {
		out[i] = orderSummary{
			Number:    o.Number,
			Status:    o.Status,
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
			Items:     o.Items,
		}
	}
	return out
}

func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	orders, err := c.service.ForUser(userID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load orders")
		return
	}
	response.Success(w, summarize(orders))
}

func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	order, err := c.service.Find(userID, chi.URLParam(r, "number"))
	if err != nil {
		if errors.Is(err, services.ErrNotYourOrder) {
			response.Forbidden(w)
			return
		}
		response.NotFound(w)
		return
	}
	response.Success(w, order)
}
