package payment

import "context"

type Gateway interface {
	CreateProduct(ctx context.Context, params ProductParams) (string, error)
	CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (string, error)
	CreateCheckoutSession(ctx context.Context, items []LineItem, successURL, cancelURL string) (string, error)
}
