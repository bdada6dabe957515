package routes

import (
	"go-storefront/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the API routes. Static segments are registered
// as exact patterns and variable segments carry numeric constraints, so the
// product add/edit/delete/review routes cannot shadow one another.
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, orderController *controllers.OrderController) {
	api := router.PathPrefix("/api").Subrouter()

	// Account routes
	api.HandleFunc("/signup", userController.Signup).Methods("POST")
	api.HandleFunc("/login", userController.Login).Methods("POST")
	api.HandleFunc("/profile/update", userController.UpdateProfile).Methods("POST")
	api.HandleFunc("/wishlist/toggle", userController.ToggleWishlist).Methods("POST")

	// Product routes
	api.HandleFunc("/products", productController.List).Methods("GET")
	api.HandleFunc("/products/add", productController.Create).Methods("POST")
	api.HandleFunc("/products/edit/{id:[0-9]+}", productController.Update).Methods("POST")
	api.HandleFunc("/products/delete/{id:[0-9]+}", productController.Delete).Methods("DELETE")
	api.HandleFunc("/products/{id:[0-9]+}/review", productController.AddReview).Methods("POST")
	api.HandleFunc("/products/{id:[0-9]+}", productController.Get).Methods("GET")

	// Order routes
	api.HandleFunc("/orders/place", orderController.Place).Methods("POST")
	api.HandleFunc("/orders/user/{userId:[0-9]+}", orderController.ListForUser).Methods("GET")
	api.HandleFunc("/orders/all", orderController.ListAll).Methods("GET")
	api.HandleFunc("/orders/status/{id:[0-9]+}", orderController.UpdateStatus).Methods("POST")
	api.HandleFunc("/orders/delete/{id:[0-9]+}", orderController.Delete).Methods("DELETE")

	// Admin user routes
	api.HandleFunc("/users", userController.List).Methods("GET")
	api.HandleFunc("/users/delete/{id:[0-9]+}", userController.Delete).Methods("DELETE")
}
