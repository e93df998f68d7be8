package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dronexpress/console-api/config"
	"github.com/dronexpress/console-api/models"
)

type recordedCall struct {
	method string
	path   string
	query  string
	body   string
}

// newRecordingService spins up a platform stub that records the last request
// and always answers with the given envelope body.
func newRecordingService(t *testing.T, response string) (*OrderService, *recordedCall) {
	t.Helper()
	last := &recordedCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*last = recordedCall{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: string(body)}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return NewOrderService(NewGateway(&config.Config{PlatformAPIURL: srv.URL})), last
}

func TestOrderServiceList(t *testing.T) {
	svc, last := newRecordingService(t, `{"status":"success","data":{"orders":[{"id":42,"status_name":"pending"}],"total":1}}`)

	res, err := svc.List(context.Background(), 2, 10, "battery")
	require.NoError(t, err)
	require.True(t, res.Ok())

	assert.Equal(t, http.MethodGet, last.method)
	assert.Equal(t, "/orders", last.path)
	assert.Contains(t, last.query, "page=2")
	assert.Contains(t, last.query, "limit=10")
	assert.Contains(t, last.query, "search=battery")

	page := res.Value()
	require.Len(t, page.Orders, 1)
	assert.Equal(t, int64(42), page.Orders[0].ID)
	assert.Equal(t, 1, page.Total)
}

func TestOrderServiceCreate(t *testing.T) {
	svc, last := newRecordingService(t, `{"status":"success","data":{"order":{"id":99}},"message":"Order created successfully"}`)

	res, err := svc.Create(context.Background(), OrderRequest{ProductID: 7, Quantity: 1})
	require.NoError(t, err)
	require.True(t, res.Ok())

	assert.Equal(t, http.MethodPost, last.method)
	assert.Equal(t, "/orders", last.path)
	assert.JSONEq(t, `{"product_id":7,"quantity":1}`, last.body)
	assert.Equal(t, int64(99), res.Value().Order.ID)
}

func TestOrderServiceUpdate(t *testing.T) {
	svc, last := newRecordingService(t, `{"status":"success","data":{"order":{"id":42}}}`)

	_, err := svc.Update(context.Background(), 42, OrderRequest{ProductID: 8, Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, last.method)
	assert.Equal(t, "/orders/42/edit", last.path)
	assert.JSONEq(t, `{"product_id":8,"quantity":1}`, last.body)
}

func TestOrderServiceTransitions(t *testing.T) {
	t.Run("confirm", func(t *testing.T) {
		svc, last := newRecordingService(t, `{"status":"success","message":"Order confirmed successfully"}`)
		res, err := svc.Confirm(context.Background(), 42)
		require.NoError(t, err)
		assert.True(t, res.Ok())
		assert.Equal(t, http.MethodPatch, last.method)
		assert.Equal(t, "/orders/42/confirm", last.path)
		assert.Empty(t, last.body)
	})

	t.Run("deliver", func(t *testing.T) {
		svc, last := newRecordingService(t, `{"status":"success"}`)
		_, err := svc.Deliver(context.Background(), 43)
		require.NoError(t, err)
		assert.Equal(t, http.MethodPatch, last.method)
		assert.Equal(t, "/orders/43/deliver", last.path)
	})

	t.Run("cancel carries the reason", func(t *testing.T) {
		svc, last := newRecordingService(t, `{"status":"success"}`)
		_, err := svc.Cancel(context.Background(), 42, "Changed my mind")
		require.NoError(t, err)
		assert.Equal(t, http.MethodPatch, last.method)
		assert.Equal(t, "/orders/42/cancel", last.path)
		assert.JSONEq(t, `{"cancellation_reason":"Changed my mind"}`, last.body)
	})
}

func TestOrderServiceList_PlatformFailure(t *testing.T) {
	svc, _ := newRecordingService(t, `{"status":"error","detail":"Orders are unavailable"}`)

	res, err := svc.List(context.Background(), 1, 10, "")
	require.NoError(t, err)
	assert.False(t, res.Ok())
	assert.Equal(t, "Orders are unavailable", res.Message())
	assert.Equal(t, models.OrderPage{}, res.Value())
}
