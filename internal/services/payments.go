package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// PaymentService creates Stripe PaymentIntents. Stripe's API is a
// form-encoded POST; the base URL is overridable so tests can point it
// at a local server.
type PaymentService struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewPaymentService(secretKey string) *PaymentService {
	return &PaymentService{
		secretKey:  secretKey,
		baseURL:    "https://api.stripe.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL overrides the Stripe API base URL (for testing).
func (s *PaymentService) WithBaseURL(baseURL string) *PaymentService {
	if baseURL != "" {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
	return s
}

// CreatePaymentIntent requests an intent for price in major currency
// units (two-decimal currency assumed) and returns the client secret
// the caller needs to complete payment client-side.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if s.secretKey == "" {
		return "", fmt.Errorf("payments: stripe secret key not configured")
	}

	amount := int64(math.Round(price * 100))
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", "usd")
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("payments: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payments: stripe request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("payments: read stripe response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payments: stripe returned status %d: %s", resp.StatusCode, string(body))
	}

	var intent struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", fmt.Errorf("payments: parse stripe response: %w", err)
	}
	if intent.ClientSecret == "" {
		return "", fmt.Errorf("payments: stripe response missing client_secret")
	}
	return intent.ClientSecret, nil
}
