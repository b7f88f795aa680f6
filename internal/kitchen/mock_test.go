package kitchen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-differently/cs-25-2-team2/internal/orders"
)

func TestMockChefs(t *testing.T) {
	m := NewMock()

	chefs, err := m.Chefs(context.Background())
	require.NoError(t, err)
	require.Len(t, chefs, 3)
	assert.Equal(t, "CHEF001", chefs[0].ID)
}

func TestMockAvailableChefsExcludesBusy(t *testing.T) {
	m := NewMock()

	chefs, err := m.AvailableChefs(context.Background())
	require.NoError(t, err)
	require.Len(t, chefs, 2)
	for _, chef := range chefs {
		assert.False(t, chef.IsBusy)
	}
}

func TestMockOrderQueueGroupsByStatus(t *testing.T) {
	m := NewMock()

	q, err := m.OrderQueue(context.Background())
	require.NoError(t, err)
	assert.Empty(t, q.Pending)
	require.Len(t, q.Preparing, 1)
	assert.Equal(t, 101, q.Preparing[0].ID)
	require.Len(t, q.ReadyForDelivery, 1)
	assert.Equal(t, 102, q.ReadyForDelivery[0].ID)
	require.Len(t, q.Delivered, 1)
	assert.Equal(t, 103, q.Delivered[0].ID)
}

func TestMockStartPreparingRequiresPendingOrder(t *testing.T) {
	m := NewMock()

	// 101 is already Preparing.
	result, err := m.StartPreparing(context.Background(), 101)
	require.NoError(t, err)
	assert.False(t, result.Success)

	m.orders = append(m.orders, Order{ID: 104, Status: orders.StatusPending})
	result, err = m.StartPreparing(context.Background(), 104)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 104, result.OrderID)

	q, err := m.OrderQueue(context.Background())
	require.NoError(t, err)
	assert.Len(t, q.Preparing, 2)
}

func TestMockCompleteOrderStepsThroughDelivery(t *testing.T) {
	m := NewMock()

	result, err := m.CompleteOrder(context.Background(), 101)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Order marked as out for delivery", result.Message)

	result, err = m.CompleteOrder(context.Background(), 101)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Order marked as ready for delivery", result.Message)

	// ReadyForDelivery is terminal for this operation.
	result, err = m.CompleteOrder(context.Background(), 101)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestMockEstimateTime(t *testing.T) {
	m := NewMock()

	est, err := m.EstimateTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, est.AvailableChefs)
	assert.Equal(t, 3, est.TotalChefs)
	assert.Equal(t, 15, est.EstimatedMinutes) // 3 orders x 10 minutes over 2 chefs
	assert.Equal(t, "15 minutes", est.EstimatedTime)
}

func TestMockEstimateTimeNoChefsAvailable(t *testing.T) {
	m := NewMock()
	for i := range m.chefs {
		m.chefs[i].IsBusy = true
	}

	est, err := m.EstimateTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -1, est.EstimatedMinutes)
	assert.Equal(t, "No chefs available", est.EstimatedTime)
	assert.Equal(t, 0, est.AvailableChefs)
}
