package order

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"devmart-be/internal/logger"
	"devmart-be/internal/payment"
	"devmart-be/internal/product"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, productIDs []string, referer string) (string, error)
}

type service struct {
	products product.Repository
	gateway  payment.Gateway
}

func NewService(products product.Repository, gateway payment.Gateway) Service {
	return &service{products: products, gateway: gateway}
}

// Checkout builds a transient order from the requested products, registers a
// processor-side product and price for each, and opens one checkout session
// over the accumulated line items. Nothing is persisted; the caller only gets
// the session id back. A failure partway through aborts the sequence and
// leaves already-created processor objects behind.
func (s *service) Checkout(ctx context.Context, productIDs []string, referer string) (string, error) {
	log := logger.FromCtx(ctx)

	origin, err := originFromReferer(referer)
	if err != nil {
		return "", err
	}

	ids := make([]primitive.ObjectID, 0, len(productIDs))
	for _, pid := range productIDs {
		id, err := primitive.ObjectIDFromHex(pid)
		if err != nil {
			return "", fmt.Errorf("invalid product id: %w", err)
		}
		ids = append(ids, id)
	}

	o := New(ids)

	found, err := s.products.FindByIDs(ctx, o.Products)
	if err != nil {
		return "", err
	}

	byID := make(map[primitive.ObjectID]*product.Product, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}

	// The store returns each matching document once; requesting an id twice
	// must still produce two line items.
	products := make([]*product.Product, 0, len(o.Products))
	for _, pid := range o.Products {
		p, ok := byID[pid]
		if !ok {
			return "", fmt.Errorf("product %s not found", pid.Hex())
		}
		products = append(products, p)
	}

	lineItems := make([]payment.LineItem, 0, len(products))
	for _, p := range products {
		productID, err := s.gateway.CreateProduct(ctx, payment.ProductParams{
			Name:        p.Name,
			Description: p.Description,
			Images:      []string{fmt.Sprintf("%s/images/%s", origin, p.Image)},
		})
		if err != nil {
			return "", err
		}

		priceID, err := s.gateway.CreatePrice(ctx, productID, toCents(p.Price), "usd")
		if err != nil {
			return "", err
		}

		// Quantity is pinned to one per line item regardless of how many
		// units were requested.
		lineItems = append(lineItems, payment.LineItem{Price: priceID, Quantity: 1})
	}

	sessionID, err := s.gateway.CreateCheckoutSession(ctx,
		lineItems,
		origin+"/success?session_id={CHECKOUT_SESSION_ID}",
		origin+"/",
	)
	if err != nil {
		return "", err
	}

	log.Info("checkout session opened",
		zap.String("session_id", sessionID),
		zap.Int("products", len(products)),
	)

	return sessionID, nil
}

// toCents rounds instead of truncating: many dollar amounts sit just below
// their decimal value as doubles (4.35*100 == 434.99...).
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

func originFromReferer(referer string) (string, error) {
	u, err := url.Parse(referer)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid referer %q", referer)
	}
	return u.Scheme + "://" + u.Host, nil
}
