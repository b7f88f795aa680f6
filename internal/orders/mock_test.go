package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockListServesSeedData(t *testing.T) {
	m := NewMock()

	out, err := m.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, 101, out[0].ID)
	assert.Equal(t, StatusDelivered, out[0].Status)
	assert.Equal(t, "John Doe", out[0].Customer.Name)
	assert.Equal(t, 13.97, out[0].TotalPrice)
}

func TestMockGet(t *testing.T) {
	m := NewMock()

	order, err := m.Get(context.Background(), 102)
	require.NoError(t, err)
	assert.Equal(t, StatusPreparing, order.Status)
	assert.Equal(t, 4.99, order.TotalPrice)

	_, err = m.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMockListItemsFlattensAllOrders(t *testing.T) {
	m := NewMock()

	items, err := m.ListItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, "French Fries", items[0].Name)
}

func TestMockCreateStampsIDTimeAndStatus(t *testing.T) {
	m := NewMock()
	created := time.Date(2025, 10, 17, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return created }
	m.newID = func() int { return 4242 }

	order, err := m.Create(context.Background(), NewOrder{
		CustomerID:   1,
		CustomerName: "John Doe",
		Items: []NewOrderLine{
			{MenuItemID: 4, Name: "Baked Potato", Price: 4.49, Quantity: 2, Subtotal: 8.98},
		},
		TotalAmount: 9.7,
	})
	require.NoError(t, err)
	assert.Equal(t, 4242, order.ID)
	assert.Equal(t, created, order.CreatedAt)
	assert.Equal(t, StatusPlaced, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 4, order.Items[0].MenuItem.ID)

	// Created orders are visible to later reads.
	got, err := m.Get(context.Background(), 4242)
	require.NoError(t, err)
	assert.Equal(t, 9.7, got.TotalPrice)
}

func TestMockCreateKeepsExplicitStatus(t *testing.T) {
	m := NewMock()

	order, err := m.Create(context.Background(), NewOrder{Status: StatusPending})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, order.Status)
}

func TestMockUpdateStatus(t *testing.T) {
	m := NewMock()

	order, err := m.UpdateStatus(context.Background(), 103, StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, StatusPreparing, order.Status)

	got, err := m.Get(context.Background(), 103)
	require.NoError(t, err)
	assert.Equal(t, StatusPreparing, got.Status)

	_, err = m.UpdateStatus(context.Background(), 999, StatusPreparing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMockCancelRemovesOrder(t *testing.T) {
	m := NewMock()

	require.NoError(t, m.Cancel(context.Background(), 101))
	_, err := m.Get(context.Background(), 101)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, m.Cancel(context.Background(), 101), ErrNotFound)
}

func TestMockByCustomer(t *testing.T) {
	m := NewMock()

	out, err := m.ByCustomer(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, out, 3)

	out, err = m.ByCustomer(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMockByStatusFiltersExactly(t *testing.T) {
	m := NewMock()

	out, err := m.ByStatus(context.Background(), StatusPreparing)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 102, out[0].ID)
}

func TestParseStatus(t *testing.T) {
	status, ok := ParseStatus("OutForDelivery")
	assert.True(t, ok)
	assert.Equal(t, StatusOutForDelivery, status)

	_, ok = ParseStatus("Paid")
	assert.False(t, ok)
}
