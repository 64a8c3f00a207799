package transport

import (
	"context"
	"net/http"
)

type ctxKey string

const requestKey ctxKey = "httpRequest"

// WithRequest stores the inbound request so resolvers can inspect headers,
// e.g. the referer origin during checkout.
func WithRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, requestKey, r)
}

func GetRequest(ctx context.Context) *http.Request {
	r, _ := ctx.Value(requestKey).(*http.Request)
	return r
}

// Middleware makes the raw request reachable from resolver context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithRequest(r.Context(), r)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
