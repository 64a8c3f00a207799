package payment

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper allows us to mock the HTTP response
type MockRoundTripper func(req *http.Request) *http.Response

func (f MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestGateway(rt http.RoundTripper) *stripeGateway {
	gw := NewStripeGateway("sk_test_123").(*stripeGateway)
	gw.httpClient = &http.Client{Transport: rt}
	return gw
}

func TestStripeGateway_CreateProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var captured url.Values
		gw := newTestGateway(MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, "POST", req.Method)
			assert.Equal(t, "/v1/products", req.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", req.Header.Get("Authorization"))

			body, _ := io.ReadAll(req.Body)
			captured, _ = url.ParseQuery(string(body))

			return jsonResponse(http.StatusOK, `{"id": "prod_abc"}`)
		}))

		id, err := gw.CreateProduct(context.Background(), ProductParams{
			Name:        "Widget",
			Description: "A widget",
			Images:      []string{"https://shop.example.com/images/widget.png"},
		})

		require.NoError(t, err)
		assert.Equal(t, "prod_abc", id)
		assert.Equal(t, "Widget", captured.Get("name"))
		assert.Equal(t, "A widget", captured.Get("description"))
		assert.Equal(t, "https://shop.example.com/images/widget.png", captured.Get("images[0]"))
	})

	t.Run("APIError", func(t *testing.T) {
		gw := newTestGateway(MockRoundTripper(func(req *http.Request) *http.Response {
			return jsonResponse(http.StatusBadRequest, `{"error": {"message": "invalid request"}}`)
		}))

		_, err := gw.CreateProduct(context.Background(), ProductParams{Name: "Widget"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "stripe error")
	})
}

func TestStripeGateway_CreatePrice(t *testing.T) {
	var captured url.Values
	gw := newTestGateway(MockRoundTripper(func(req *http.Request) *http.Response {
		assert.Equal(t, "/v1/prices", req.URL.Path)
		body, _ := io.ReadAll(req.Body)
		captured, _ = url.ParseQuery(string(body))
		return jsonResponse(http.StatusOK, `{"id": "price_abc"}`)
	}))

	id, err := gw.CreatePrice(context.Background(), "prod_abc", 999, "usd")

	require.NoError(t, err)
	assert.Equal(t, "price_abc", id)
	assert.Equal(t, "prod_abc", captured.Get("product"))
	assert.Equal(t, "999", captured.Get("unit_amount"))
	assert.Equal(t, "usd", captured.Get("currency"))
}

func TestStripeGateway_CreateCheckoutSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var captured url.Values
		gw := newTestGateway(MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, "/v1/checkout/sessions", req.URL.Path)
			body, _ := io.ReadAll(req.Body)
			captured, _ = url.ParseQuery(string(body))
			return jsonResponse(http.StatusOK, `{"id": "cs_test_abc"}`)
		}))

		items := []LineItem{
			{Price: "price_1", Quantity: 1},
			{Price: "price_2", Quantity: 1},
		}

		id, err := gw.CreateCheckoutSession(context.Background(), items,
			"https://shop.example.com/success?session_id={CHECKOUT_SESSION_ID}",
			"https://shop.example.com/",
		)

		require.NoError(t, err)
		assert.Equal(t, "cs_test_abc", id)
		assert.Equal(t, "payment", captured.Get("mode"))
		assert.Equal(t, "card", captured.Get("payment_method_types[0]"))
		assert.Equal(t, "price_1", captured.Get("line_items[0][price]"))
		assert.Equal(t, "1", captured.Get("line_items[0][quantity]"))
		assert.Equal(t, "price_2", captured.Get("line_items[1][price]"))
	})

	t.Run("APIError", func(t *testing.T) {
		gw := newTestGateway(MockRoundTripper(func(req *http.Request) *http.Response {
			return jsonResponse(http.StatusUnauthorized, `{"error": {"message": "bad key"}}`)
		}))

		_, err := gw.CreateCheckoutSession(context.Background(), nil, "s", "c")
		assert.Error(t, err)
	})
}
