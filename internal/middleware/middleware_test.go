package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"devmart-be/internal/user"
	"devmart-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	t.Run("Missing Token", func(t *testing.T) {
		// Middleware is passive: anonymous requests pass through with no
		// principal in context.
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok, "Context should not contain user ID")
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("POST", "/query", nil)
		w := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		// Garbage tokens are treated the same as no token; the resolver
		// layer rejects protected operations.
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("POST", "/query", nil)
		req.Header.Set("Authorization", "Bearer invalid-token")
		w := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Valid Token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		token, err := user.GenerateJWT("64f1c2d9a1b2c3d4e5f60718", "amiko", "amiko@testmail.com")
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/query", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, "64f1c2d9a1b2c3d4e5f60718", userID)
			w.WriteHeader(http.StatusOK)
		})

		AuthMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		token, err := user.GenerateJWT("64f1c2d9a1b2c3d4e5f60718", "amiko", "amiko@testmail.com")
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "another-secret")

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("POST", "/query", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(next)

	t.Run("Strict tier exhausts burst", func(t *testing.T) {
		// Distinct address so state from other tests does not bleed in.
		addr := "10.1.1.1:1234"

		for i := 0; i < burstStrict; i++ {
			req := httptest.NewRequest("POST", "/query", nil)
			req.RemoteAddr = addr
			req.Header.Set("X-Action", "auth")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, "request %d inside burst", i)
		}

		req := httptest.NewRequest("POST", "/query", nil)
		req.RemoteAddr = addr
		req.Header.Set("X-Action", "auth")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("General tier allows more than strict burst", func(t *testing.T) {
		addr := "10.1.1.2:1234"

		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/query", nil)
			req.RemoteAddr = addr
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
		}
	})

	t.Run("Identities are isolated", func(t *testing.T) {
		// Exhaust one address, a different one is unaffected.
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/query", nil)
			req.RemoteAddr = "10.1.1.3:1234"
			req.Header.Set("X-Action", "auth")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
		}

		req := httptest.NewRequest("POST", "/query", nil)
		req.RemoteAddr = "10.1.1.4:1234"
		req.Header.Set("X-Action", "auth")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		fmt.Fprint(w, "ok")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	LoggingMiddleware(next).ServeHTTP(w, req)

	// Status set by the inner handler must survive the recorder wrapper.
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
