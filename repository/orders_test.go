package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
	"go-storefront/store"
)

func placeInput(userID int64, total float64) OrderInput {
	return OrderInput{
		UserID:   models.FlexID(userID),
		UserName: "Ann",
		Items:    json.RawMessage(`[{"productId":1,"quantity":2}]`),
		Total:    &total,
		Address:  "1 Main St",
	}
}

func TestOrdersPlace(t *testing.T) {
	orders := NewOrders(store.NewMemStore())

	order, err := orders.Place(placeInput(7, 50))
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, "Pending", order.Status)
	assert.Equal(t, 50.0, order.Total)
	assert.NotEmpty(t, order.Date)
	assert.NotEmpty(t, order.Time)
	assert.JSONEq(t, `[{"productId":1,"quantity":2}]`, string(order.Items))
}

func TestOrdersPlaceValidation(t *testing.T) {
	orders := NewOrders(store.NewMemStore())

	in := placeInput(7, 50)
	in.Total = nil
	_, err := orders.Place(in)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	in = placeInput(7, 50)
	in.Items = nil
	_, err = orders.Place(in)
	assert.ErrorAs(t, err, &ve)

	// nothing was persisted by the failed attempts
	all, err := orders.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOrdersListForUser(t *testing.T) {
	orders := NewOrders(store.NewMemStore())
	_, err := orders.Place(placeInput(7, 50))
	require.NoError(t, err)
	_, err = orders.Place(placeInput(8, 80))
	require.NoError(t, err)
	_, err = orders.Place(placeInput(7, 20))
	require.NoError(t, err)

	mine, err := orders.ListForUser(7)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := orders.ListForUser(99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrdersUpdateStatus(t *testing.T) {
	orders := NewOrders(store.NewMemStore())
	order, err := orders.Place(placeInput(7, 50))
	require.NoError(t, err)

	updated, err := orders.UpdateStatus(order.ID, "Shipped")
	require.NoError(t, err)
	assert.Equal(t, "Shipped", updated.Status)

	all, err := orders.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Shipped", all[0].Status)

	_, err = orders.UpdateStatus(999, "Shipped")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrdersDeleteIdempotent(t *testing.T) {
	orders := NewOrders(store.NewMemStore())
	order, err := orders.Place(placeInput(7, 50))
	require.NoError(t, err)

	require.NoError(t, orders.Delete(order.ID))
	require.NoError(t, orders.Delete(order.ID))

	all, err := orders.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOrdersEnsureInitialized(t *testing.T) {
	mem := store.NewMemStore()
	orders := NewOrders(mem)

	require.NoError(t, orders.EnsureInitialized())
	assert.True(t, mem.Exists("orders"))

	var docs []any
	require.NoError(t, mem.Load("orders", &docs))
	assert.Empty(t, docs)
}

func TestOrdersEnsureInitializedKeepsExistingOrders(t *testing.T) {
	orders := NewOrders(store.NewMemStore())
	_, err := orders.Place(placeInput(7, 50))
	require.NoError(t, err)

	require.NoError(t, orders.EnsureInitialized())
	all, err := orders.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
