package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextHelpers(t *testing.T) {
	t.Run("Success_InjectAndRetrieve", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		ctx := WithRequest(context.Background(), req)

		assert.Equal(t, req, GetRequest(ctx), "Request should match the injected request")
	})

	t.Run("Empty_Context_ReturnsNil", func(t *testing.T) {
		assert.Nil(t, GetRequest(context.Background()), "GetRequest should return nil if key is missing")
	})
}

func TestMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	req.Header.Set("Referer", "http://localhost:3000/cart")
	w := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := GetRequest(r.Context())
		assert.NotNil(t, got)
		assert.Equal(t, "http://localhost:3000/cart", got.Header.Get("Referer"))
	})

	Middleware(next).ServeHTTP(w, req)
}
