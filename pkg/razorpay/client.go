package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/canvascart/go-api/pkg/global"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// Client talks to the Razorpay orders API with key-id/key-secret basic
// auth. The HTTP client carries an explicit timeout since the gateway is
// the only outbound dependency.
type Client struct {
	KeyID      string
	KeySecret  string
	BaseURL    string
	HTTPClient *http.Client
}

// Order is the gateway's order resource. Amount is in paise.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// NewFromEnv builds a client from RAZORPAY_KEY_ID / RAZORPAY_SECRET.
// Missing keys are a deployment error, reported to the caller instead of
// failing at request time.
func NewFromEnv() (*Client, error) {
	keyID := global.GetEnvOrDefault("RAZORPAY_KEY_ID", "")
	keySecret := global.GetEnvOrDefault("RAZORPAY_SECRET", "")
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("razorpay configuration missing")
	}
	return &Client{
		KeyID:      keyID,
		KeySecret:  keySecret,
		BaseURL:    global.GetEnvOrDefault("RAZORPAY_API_URL", defaultBaseURL),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// CreateOrder asks the gateway to create a payment order for the amount
// in paise and returns the gateway's order unchanged.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error) {
	payload := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.KeyID, c.KeySecret)

	return c.doOrder(req)
}

// FetchOrder retrieves the gateway's own record of an order, used to
// cross-check the client-supplied amount during verification.
func (c *Client) FetchOrder(ctx context.Context, orderID string) (*Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/orders/"+orderID, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.KeyID, c.KeySecret)

	return c.doOrder(req)
}

func (c *Client) doOrder(req *http.Request) (*Order, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach razorpay: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Description != "" {
			return nil, fmt.Errorf("razorpay error: %s", apiErr.Error.Description)
		}
		return nil, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse razorpay response: %w", err)
	}
	return &order, nil
}

// NewReceipt generates a receipt reference for a gateway order.
func NewReceipt() string {
	return fmt.Sprintf("receipt_order_%d", time.Now().UnixMilli())
}

// ExpectedSignature computes the hex HMAC-SHA256 over "orderID|paymentID"
// keyed with the shared secret. This is the integrity check the gateway
// applies to its redirect confirmation.
func ExpectedSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares the supplied signature byte-for-byte against
// the recomputed one.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	expected := ExpectedSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
