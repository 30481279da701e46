package httpServices

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.stripe.com"

// StripeClient wraps the payment gateway's payment-intent API.
type StripeClient struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

// NewClient builds a gateway client. baseURL may be empty, in which case the
// production API endpoint is used.
func NewClient(secretKey, baseURL string) *StripeClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &StripeClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
	}
}

// CreatePaymentIntent stages a charge for the given amount (smallest currency
// unit) and returns the client secret the frontend completes payment with.
func (c *StripeClient) CreatePaymentIntent(amountInCents int64, currency string, methods []string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountInCents, 10))
	form.Set("currency", currency)
	for _, m := range methods {
		form.Add("payment_method_types[]", m)
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &GatewayError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error.Message == "" {
			return "", &GatewayError{Message: "payment gateway returned non-OK status: " + resp.Status}
		}
		return "", &GatewayError{Message: apiErr.Error.Message}
	}

	var intent paymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", fmt.Errorf("failed to decode payment intent response: %w", err)
	}

	return intent.ClientSecret, nil
}
