package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "loyalty-storefront/shop-svc/internal/api/http"
	"loyalty-storefront/shop-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flowClient struct {
	t      *testing.T
	server *httptest.Server
}

func (c flowClient) do(method, path, userID string, isAdmin bool, body any, out any) int {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, c.server.URL+path, &buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(httpapi.HeaderUserID, userID)
	}
	if isAdmin {
		req.Header.Set(httpapi.HeaderAdmin, "true")
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestCheckoutToRedemptionFlow(t *testing.T) {
	s := newShop(t)
	server := httptest.NewServer(httpapi.NewRouter(httpapi.NewHandler(s.catalog, s.orders, s.points, s.rewards)))
	defer server.Close()
	c := flowClient{t: t, server: server}

	var product domain.Product
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/admin/products", "1", true,
		domain.Product{Name: "Jasmine garland", Price: 500, Category: "garland"}, &product))

	var order domain.Order
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/orders", "42", false, domain.CheckoutRequest{
		CustomerName: "Somchai",
		Phone:        "0812345678",
		Items:        []domain.LineSelection{{ProductID: product.ID, Quantity: 2}},
	}, &order))
	assert.Equal(t, int64(1000), order.Total)

	var balance domain.Balance
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/points", "42", false, nil, &balance))
	assert.Equal(t, domain.Balance{}, balance)

	t.Run("customer cannot move orders", func(t *testing.T) {
		status := c.do(http.MethodPost, fmt.Sprintf("/api/admin/orders/%d/status", order.ID), "42", false,
			map[string]string{"status": "confirmed"}, nil)
		assert.Equal(t, http.StatusForbidden, status)
	})

	for _, next := range []string{"confirmed", "preparing", "completed"} {
		require.Equal(t, http.StatusOK, c.do(http.MethodPost, fmt.Sprintf("/api/admin/orders/%d/status", order.ID), "1", true,
			map[string]string{"status": next}, &order))
		if next == "confirmed" {
			require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/points", "42", false, nil, &balance))
			assert.Equal(t, domain.Balance{Pending: 100}, balance)
		}
	}
	assert.Equal(t, domain.StatusCompleted, order.Status)
	assert.Equal(t, int64(100), order.PointsAccrued)

	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/points", "42", false, nil, &balance))
	assert.Equal(t, domain.Balance{Available: 100, Earned: 100}, balance)

	var reward domain.Reward
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/admin/rewards", "1", true,
		domain.Reward{Name: "Free water", PointsRequired: 80, Stock: 1, Active: true}, &reward))

	var record domain.RedemptionRecord
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, fmt.Sprintf("/api/rewards/%d/redeem", reward.ID), "42", false, nil, &record))
	assert.Equal(t, int64(80), record.PointsUsed)
	assert.NotEmpty(t, record.Code)

	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/points", "42", false, nil, &balance))
	assert.Equal(t, domain.Balance{Available: 20, Earned: 100, Redeemed: 80}, balance)

	t.Run("completed order is terminal", func(t *testing.T) {
		status := c.do(http.MethodPost, fmt.Sprintf("/api/admin/orders/%d/status", order.ID), "1", true,
			map[string]string{"status": "pending"}, nil)
		assert.Equal(t, http.StatusConflict, status)
	})
}
