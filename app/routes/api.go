// Package routes registers every HTTP route the store exposes.
package routes

import (
	"github.com/shashiranjanraj/vendora/app/controllers"
	"github.com/shashiranjanraj/vendora/app/services"
	"github.com/shashiranjanraj/vendora/pkg/metrics"
	"github.com/shashiranjanraj/vendora/pkg/middleware"
	"github.com/shashiranjanraj/vendora/pkg/router"
	"github.com/shashiranjanraj/vendora/pkg/ws"
)

// RegisterAPI wires controllers onto the router. The feed carries live
// order events to connected admin dashboards.
func RegisterAPI(r *router.Router, feed *ws.Feed) {
	authController := controllers.NewAuthController()
	catalogController := controllers.NewCatalogController()
	orderController := controllers.NewOrderController(services.NewOrderService(feed))
	adminController := controllers.NewAdminController(services.NewAdminService(feed), feed)

	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")

	// Public
	api.Post("/auth/signup", "auth.signup", authController.Signup)
	api.Post("/auth/login", "auth.login", authController.Login)
	api.Post("/token/refresh", "auth.refresh", authController.Refresh)
	api.Get("/products", "catalog.products", catalogController.Products)
	api.Get("/products/{id}", "catalog.product", catalogController.Product)
	api.Get("/categories", "catalog.categories", catalogController.Categories)

	// Authenticated
	user := api.Group("", middleware.Auth)
	user.Get("/user/profile", "user.profile", authController.Profile)
	user.Post("/user/change-password", "user.password", authController.ChangePassword)
	user.Get("/user/orders", "orders.index", orderController.Index)
	user.Post("/orders", "orders.checkout", orderController.Checkout)
	user.Get("/orders/{number}", "orders.show", orderController.Show)

	// Admin
	admin := api.Group("/admin", middleware.Auth, middleware.Admin)
	admin.Get("/dashboard", "admin.dashboard", adminController.Dashboard)
	admin.Get("/orders", "admin.orders", adminController.Orders)
	admin.Put("/orders/{number}/status", "admin.orders.status", adminController.UpdateStatus)
	admin.Post("/products/{id}/image", "admin.products.image", catalogController.UploadImage)
	admin.Get("/live", "admin.live", adminController.Live)
}
