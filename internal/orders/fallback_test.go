package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	return NewClient(srv.URL, time.Second)
}

func TestFallbackServesMockWhenBackendDown(t *testing.T) {
	gw := NewFallback(unreachableClient(t), NewMock())

	out, err := gw.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 3)

	preparing, err := gw.ByStatus(context.Background(), StatusPreparing)
	require.NoError(t, err)
	require.Len(t, preparing, 1)
	assert.Equal(t, 102, preparing[0].ID)
}

func TestFallbackCreateLandsInMockWhenBackendDown(t *testing.T) {
	mock := NewMock()
	gw := NewFallback(unreachableClient(t), mock)

	order, err := gw.Create(context.Background(), NewOrder{CustomerID: 1, CustomerName: "John Doe", TotalAmount: 4.99})
	require.NoError(t, err)
	assert.Equal(t, StatusPlaced, order.Status)

	got, err := mock.Get(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.99, got.TotalPrice)
}

func TestFallbackPrefersPrimaryWhenHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]Order{{ID: 555, Status: StatusPlaced}})
	}))
	defer srv.Close()

	gw := NewFallback(NewClient(srv.URL, time.Second), NewMock())

	out, err := gw.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 555, out[0].ID)
}

func TestFallbackCancelDelegates(t *testing.T) {
	mock := NewMock()
	gw := NewFallback(unreachableClient(t), mock)

	require.NoError(t, gw.Cancel(context.Background(), 101))
	_, err := mock.Get(context.Background(), 101)
	assert.ErrorIs(t, err, ErrNotFound)
}
