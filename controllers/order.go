package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"go-storefront/models"
	"go-storefront/repository"
	"go-storefront/utils"
)

// OrderController handles order-related requests.
type OrderController struct {
	Orders *repository.Orders
	Users  *repository.Users
	Email  *utils.EmailService
	Log    *logrus.Logger
}

// NewOrderController creates a new OrderController.
func NewOrderController(orders *repository.Orders, users *repository.Users, email *utils.EmailService, log *logrus.Logger) *OrderController {
	return &OrderController{Orders: orders, Users: users, Email: email, Log: log}
}

// Place records a new order.
func (oc *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID   models.FlexID   `json:"userId"`
		UserName string          `json:"userName"`
		Items    json.RawMessage `json:"items"`
		Total    *float64        `json:"total"`
		Address  string          `json:"address"`
	}
	utils.DecodeBody(r, &body)

	order, err := oc.Orders.Place(repository.OrderInput{
		UserID:   body.UserID,
		UserName: body.UserName,
		Items:    body.Items,
		Total:    body.Total,
		Address:  body.Address,
	})
	if err != nil {
		respondError(oc.Log, w, err, "Order not found")
		return
	}
	if oc.Email.Enabled() {
		go oc.notify(order, oc.Email.SendOrderConfirmation)
	}
	utils.OK(w, http.StatusCreated, utils.Envelope{"message": "Order placed!", "order": order})
}

// ListForUser retrieves the orders placed by one account.
func (oc *OrderController) ListForUser(w http.ResponseWriter, r *http.Request) {
	orders, err := oc.Orders.ListForUser(pathID(r, "userId"))
	if err != nil {
		respondError(oc.Log, w, err, "Order not found")
		return
	}
	utils.OK(w, http.StatusOK, utils.Envelope{"orders": orders})
}

// ListAll retrieves every order (Admin).
func (oc *OrderController) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := oc.Orders.ListAll()
	if err != nil {
		respondError(oc.Log, w, err, "Order not found")
		return
	}
	utils.OK(w, http.StatusOK, utils.Envelope{"orders": orders})
}

// UpdateStatus sets an order's status (Admin).
func (oc *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	utils.DecodeBody(r, &body)

	order, err := oc.Orders.UpdateStatus(pathID(r, "id"), body.Status)
	if err != nil {
		respondError(oc.Log, w, err, "Order not found")
		return
	}
	if oc.Email.Enabled() {
		go oc.notify(order, oc.Email.SendStatusUpdate)
	}
	utils.OK(w, http.StatusOK, utils.Envelope{"message": "Status updated!"})
}

// Delete removes an order (Admin). Deleting an absent id succeeds.
func (oc *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := oc.Orders.Delete(pathID(r, "id")); err != nil {
		respondError(oc.Log, w, err, "Order not found")
		return
	}
	utils.OK(w, http.StatusOK, utils.Envelope{"message": "Order deleted!"})
}

// notify emails the order's account holder. Orders may reference deleted
// accounts; those are skipped silently.
func (oc *OrderController) notify(order models.Order, send func(string, models.Order) error) {
	user, err := oc.Users.Get(int64(order.UserID))
	if err != nil {
		return
	}
	if err := send(user.Email, order); err != nil {
		oc.Log.WithError(err).WithField("order", order.ID).Warn("failed to send order email")
	}
}
