package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedSignature(t *testing.T) {
	t.Parallel()

	got := ExpectedSignature("order_1", "pay_1", "s3cr3t")
	require.Equal(t, "c4ba7785e595b717abd8b4847eaf30e97f23acbdbe1b8f5cbbf17d28d63b068f", got)
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	sig := ExpectedSignature("order_1", "pay_1", "s3cr3t")
	assert.True(t, VerifySignature("order_1", "pay_1", sig, "s3cr3t"))

	// A single flipped hex digit must fail the comparison.
	flipped := []byte(sig)
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}
	assert.False(t, VerifySignature("order_1", "pay_1", string(flipped), "s3cr3t"))

	assert.False(t, VerifySignature("order_1", "pay_1", sig, "other-secret"))
	assert.False(t, VerifySignature("order_2", "pay_1", sig, "s3cr3t"))
	assert.False(t, VerifySignature("order_1", "pay_2", sig, "s3cr3t"))
	assert.False(t, VerifySignature("order_1", "pay_1", "", "s3cr3t"))
}

func TestCreateOrder(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "key_test", user)
		require.Equal(t, "secret_test", pass)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.EqualValues(t, 50000, payload["amount"])
		require.Equal(t, "INR", payload["currency"])

		json.NewEncoder(w).Encode(Order{
			ID:       "order_test123",
			Amount:   50000,
			Currency: "INR",
			Receipt:  payload["receipt"].(string),
			Status:   "created",
		})
	}))
	defer server.Close()

	client := &Client{
		KeyID:      "key_test",
		KeySecret:  "secret_test",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	}

	order, err := client.CreateOrder(context.Background(), 50000, "INR", "receipt_order_1")
	require.NoError(t, err)
	assert.Equal(t, "order_test123", order.ID)
	assert.EqualValues(t, 50000, order.Amount)
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrderGatewayError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount must be at least 100"}}`))
	}))
	defer server.Close()

	client := &Client{
		KeyID:      "key_test",
		KeySecret:  "secret_test",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	}

	_, err := client.CreateOrder(context.Background(), 1, "INR", "receipt_order_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount must be at least 100")
}

func TestFetchOrder(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/orders/order_abc", r.URL.Path)
		json.NewEncoder(w).Encode(Order{ID: "order_abc", Amount: 1200, Currency: "INR", Status: "paid"})
	}))
	defer server.Close()

	client := &Client{
		KeyID:      "key_test",
		KeySecret:  "secret_test",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	}

	order, err := client.FetchOrder(context.Background(), "order_abc")
	require.NoError(t, err)
	assert.Equal(t, "order_abc", order.ID)
	assert.EqualValues(t, 1200, order.Amount)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_SECRET", "")
	_, err := NewFromEnv()
	require.Error(t, err)

	t.Setenv("RAZORPAY_KEY_ID", "key_test")
	t.Setenv("RAZORPAY_SECRET", "secret_test")
	client, err := NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "key_test", client.KeyID)
	assert.Equal(t, defaultBaseURL, client.BaseURL)
}

func TestNewReceipt(t *testing.T) {
	t.Parallel()

	assert.True(t, strings.HasPrefix(NewReceipt(), "receipt_order_"))
}
