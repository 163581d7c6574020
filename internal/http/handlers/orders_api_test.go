package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPlacement_ExceedsStock(t *testing.T) {
	app, db := newTestApp(t)
	resetProducts(t, db)
	tok := loginToken(t, app)

	created := createProduct(t, app, "Widget", "10", 10)
	id, _ := created["id"].(string)

	resp, body := doJSON(t, app, "POST", "/shop/orders", tok, map[string]any{"id": id, "quantity": 100})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", body["error"])
	assert.Equal(t, "order exceeds stock quantity, reduce order quantity", body["message"])

	// Failed order never mutates stock.
	resp, body = doJSON(t, app, "GET", "/shop/products/"+id, tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(10), body["stock"])
}

func TestOrderPlacement_Success(t *testing.T) {
	app, db := newTestApp(t)
	resetProducts(t, db)
	tok := loginToken(t, app)

	created := createProduct(t, app, "Widget", "10", 5)
	id, _ := created["id"].(string)

	resp, body := doJSON(t, app, "POST", "/shop/orders", tok, map[string]any{"id": id, "quantity": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ORDER SUCCESS", body["info"])
	assert.Equal(t, "Widget", body["product_name"])
	assert.Equal(t, float64(10), body["price"])
	assert.Equal(t, float64(3), body["order_quantity"])
	assert.Equal(t, "pcs", body["unit"])

	resp, body = doJSON(t, app, "GET", "/shop/products/"+id, tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["stock"])
}

func TestOrderPlacement_UnknownProduct(t *testing.T) {
	app, db := newTestApp(t)
	resetProducts(t, db)
	tok := loginToken(t, app)

	resp, body := doJSON(t, app, "POST", "/shop/orders", tok, map[string]any{"id": "ghost", "quantity": 1})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Unknown product", body["message"])
}

func TestOrderListing_DefaultSortByProductName(t *testing.T) {
	app, db := newTestApp(t)
	resetProducts(t, db)
	tok := loginToken(t, app)

	a := createProduct(t, app, "Zebra", "10", 5)
	b := createProduct(t, app, "Apple", "5", 5)
	for _, p := range []map[string]any{a, b} {
		id, _ := p["id"].(string)
		resp, _ := doJSON(t, app, "POST", "/shop/orders", tok, map[string]any{"id": id, "quantity": 1})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := doJSON(t, app, "GET", "/shop/orders", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, _ := body["data"].([]any)
	require.Len(t, data, 2)
	first, _ := data[0].(map[string]any)
	assert.Equal(t, "Apple", first["product_name"])
}

func TestOrderUpdateQuantity(t *testing.T) {
	app, db := newTestApp(t)
	resetProducts(t, db)
	tok := loginToken(t, app)

	created := createProduct(t, app, "Widget", "10", 5)
	pid, _ := created["id"].(string)

	resp, body := doJSON(t, app, "POST", "/shop/orders", tok, map[string]any{"id": pid, "quantity": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	oid, _ := body["order_id"].(string)
	require.NotEmpty(t, oid)

	// 2 -> 4 takes two more units of stock (5-2=3, then 3-2=1).
	resp, body = doJSON(t, app, "PUT", "/shop/orders/"+oid, tok, map[string]any{"quantity": 4})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(4), body["order_quantity"])

	resp, body = doJSON(t, app, "GET", "/shop/products/"+pid, tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["stock"])

	// Asking beyond remaining stock fails.
	resp, body = doJSON(t, app, "PUT", "/shop/orders/"+oid, tok, map[string]any{"quantity": 50})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", body["error"])
}

func TestOrderDelete(t *testing.T) {
	app, db := newTestApp(t)
	resetProducts(t, db)
	tok := loginToken(t, app)

	created := createProduct(t, app, "Widget", "10", 5)
	pid, _ := created["id"].(string)
	resp, body := doJSON(t, app, "POST", "/shop/orders", tok, map[string]any{"id": pid, "quantity": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	oid, _ := body["order_id"].(string)

	resp, _ = doJSON(t, app, "DELETE", "/shop/orders/"+oid, tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/shop/orders/"+oid, tok, nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
