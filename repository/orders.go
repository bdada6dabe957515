package repository

import (
	"encoding/json"
	"time"

	"go-storefront/models"
	"go-storefront/store"
)

const ordersCollection = "orders"

// Orders exposes purchase order mutations over the orders collection.
type Orders struct {
	store store.Store
}

func NewOrders(s store.Store) *Orders {
	return &Orders{store: s}
}

// OrderInput is the payload for placing an order. Total is a pointer so an
// absent total can be told apart from an explicit zero.
type OrderInput struct {
	UserID   models.FlexID
	UserName string
	Items    json.RawMessage
	Total    *float64
	Address  string
}

// Place records a new order with status Pending. Items and total must be
// present; the items payload is otherwise opaque.
func (r *Orders) Place(in OrderInput) (models.Order, error) {
	if len(in.Items) == 0 || string(in.Items) == "null" || in.Total == nil {
		return models.Order{}, &ValidationError{Message: "Invalid order data"}
	}
	var order models.Order
	err := r.store.Update(ordersCollection, func() error {
		var orders []models.Order
		if err := r.store.Load(ordersCollection, &orders); err != nil {
			return err
		}
		var maxID int64
		for _, o := range orders {
			if o.ID > maxID {
				maxID = o.ID
			}
		}
		now := time.Now()
		order = models.Order{
			ID:       nextID(maxID),
			UserID:   in.UserID,
			UserName: in.UserName,
			Items:    in.Items,
			Total:    *in.Total,
			Address:  in.Address,
			Status:   "Pending",
			Date:     now.Format("1/2/2006"),
			Time:     now.Format("3:04:05 PM"),
		}
		orders = append(orders, order)
		return r.store.Persist(ordersCollection, orders)
	})
	return order, err
}

// ListForUser returns the orders whose userId matches, in insertion order.
func (r *Orders) ListForUser(userID int64) ([]models.Order, error) {
	var orders []models.Order
	if err := r.store.Load(ordersCollection, &orders); err != nil {
		return nil, err
	}
	matched := make([]models.Order, 0)
	for _, o := range orders {
		if int64(o.UserID) == userID {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// ListAll returns every order in insertion order.
func (r *Orders) ListAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.store.Load(ordersCollection, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus sets the order's status. Status values are free-form text;
// Pending is only the initial value.
func (r *Orders) UpdateStatus(id int64, status string) (models.Order, error) {
	var order models.Order
	err := r.store.Update(ordersCollection, func() error {
		var orders []models.Order
		if err := r.store.Load(ordersCollection, &orders); err != nil {
			return err
		}
		for i := range orders {
			if orders[i].ID == id {
				orders[i].Status = status
				order = orders[i]
				return r.store.Persist(ordersCollection, orders)
			}
		}
		return ErrNotFound
	})
	return order, err
}

// Delete removes the order if present. A missing id is not an error.
func (r *Orders) Delete(id int64) error {
	return r.store.Update(ordersCollection, func() error {
		var orders []models.Order
		if err := r.store.Load(ordersCollection, &orders); err != nil {
			return err
		}
		kept := make([]models.Order, 0, len(orders))
		for _, o := range orders {
			if o.ID != id {
				kept = append(kept, o)
			}
		}
		return r.store.Persist(ordersCollection, kept)
	})
}
