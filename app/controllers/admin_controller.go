package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vendora/app/services"
	"github.com/shashiranjanraj/vendora/pkg/bind"
	"github.com/shashiranjanraj/vendora/pkg/response"
	"github.com/shashiranjanraj/vendora/pkg/validate"
	"github.com/shashiranjanraj/vendora/pkg/ws"
)

// AdminController backs the admin dashboard, order management and the live
// order feed.
type AdminController struct {
	service *services.AdminService
	feed    *ws.Feed
}

func NewAdminController(service *services.AdminService, feed *ws.Feed) *AdminController {
	return &AdminController{service: service, feed: feed}
}

func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := c.service.Dashboard()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load dashboard")
		return
	}
	response.Success(w, dashboard)
}

// adminOrderRow is one row of the admin order listing.
type adminOrderRow struct {
	Number    string    `json:"number"`
	User      string    `json:"user"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *AdminController) Orders(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if size < 1 {
		size = 20
	}

	orders, pagination, err := c.service.Orders(page, size)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load orders")
		return
	}

	rows := make([]adminOrderRow, len(orders))
	for i, o := range orders {
		rows[i] = adminOrderRow{
			Number:    o.Number,
			User:      o.User.Name,
			Status:    o.Status,
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
		}
	}
	response.Paginated(w, rows, pagination)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,in=pending|processing|shipped|delivered|cancelled"`
}

func (c *AdminController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body updateStatusRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.UpdateStatus(chi.URLParam(r, "number"), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownStatus):
			response.Error(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(w)
		default:
			response.Error(w, http.StatusInternalServerError, "could not update order")
		}
		return
	}

	response.Success(w, order)
}

// Live upgrades the connection to the WebSocket order feed.
func (c *AdminController) Live(w http.ResponseWriter, r *http.Request) {
	c.feed.Upgrade(w, r)
}
