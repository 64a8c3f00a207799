package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"devmart-be/internal/logger"

	"go.uber.org/zap"
)

const stripeBaseURL = "https://api.stripe.com"

type stripeGateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewStripeGateway(apiKey string) Gateway {
	if apiKey == "" {
		logger.L().Warn("Stripe API key is empty")
	}

	return &stripeGateway{
		apiKey:  apiKey,
		baseURL: stripeBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (s *stripeGateway) CreateProduct(ctx context.Context, params ProductParams) (string, error) {
	form := url.Values{}
	form.Set("name", params.Name)
	form.Set("description", params.Description)
	for i, img := range params.Images {
		form.Set(fmt.Sprintf("images[%d]", i), img)
	}

	res, err := s.postForm(ctx, "/v1/products", form)
	if err != nil {
		return "", err
	}

	logger.FromCtx(ctx).Info("Stripe product created",
		zap.String("product_id", res.ID),
		zap.String("name", params.Name),
	)
	return res.ID, nil
}

func (s *stripeGateway) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("product", productID)
	form.Set("unit_amount", strconv.FormatInt(unitAmount, 10))
	form.Set("currency", currency)

	res, err := s.postForm(ctx, "/v1/prices", form)
	if err != nil {
		return "", err
	}

	logger.FromCtx(ctx).Info("Stripe price created",
		zap.String("price_id", res.ID),
		zap.Int64("unit_amount", unitAmount),
	)
	return res.ID, nil
}

func (s *stripeGateway) CreateCheckoutSession(ctx context.Context, items []LineItem, successURL, cancelURL string) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	for i, item := range items {
		form.Set(fmt.Sprintf("line_items[%d][price]", i), item.Price)
		form.Set(fmt.Sprintf("line_items[%d][quantity]", i), strconv.FormatInt(item.Quantity, 10))
	}

	res, err := s.postForm(ctx, "/v1/checkout/sessions", form)
	if err != nil {
		return "", err
	}

	logger.FromCtx(ctx).Info("Stripe checkout session created",
		zap.String("session_id", res.ID),
		zap.Int("line_items", len(items)),
	)
	return res.ID, nil
}

type stripeObject struct {
	ID string `json:"id"`
}

func (s *stripeGateway) postForm(ctx context.Context, path string, form url.Values) (*stripeObject, error) {
	log := logger.FromCtx(ctx).With(zap.String("path", path))

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Error("Stripe request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read stripe response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("Stripe returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("stripe error: %s", string(bodyBytes))
	}

	var res stripeObject
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding Stripe response", zap.Error(err))
		return nil, err
	}

	return &res, nil
}
