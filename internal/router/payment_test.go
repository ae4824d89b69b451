package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvascart/go-api/pkg/razorpay"
)

func newPaymentRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/payment/checkout", CheckoutPayment)
	r.POST("/api/payment/verify", OptionalAuth(), VerifyPayment)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutPaymentRejectsMissingAmount(t *testing.T) {
	r := newPaymentRouter(t)

	w := postJSON(t, r, "/api/payment/checkout", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Amount is required")

	w = postJSON(t, r, "/api/payment/checkout", `{"amount": -5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutPaymentUnconfiguredGateway(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_SECRET", "")
	r := newPaymentRouter(t)

	w := postJSON(t, r, "/api/payment/checkout", `{"amount": 50000}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Payment gateway not configured")
}

func TestCheckoutPaymentCreatesOrder(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		json.NewEncoder(w).Encode(razorpay.Order{
			ID:       "order_test123",
			Amount:   int64(payload["amount"].(float64)),
			Currency: "INR",
			Status:   "created",
		})
	}))
	defer gateway.Close()

	t.Setenv("RAZORPAY_KEY_ID", "key_test")
	t.Setenv("RAZORPAY_SECRET", "secret_test")
	t.Setenv("RAZORPAY_API_URL", gateway.URL)
	r := newPaymentRouter(t)

	w := postJSON(t, r, "/api/payment/checkout", `{"amount": 50000}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "order_test123")
	assert.Contains(t, w.Body.String(), "50000")
}

func TestVerifyPaymentMissingFields(t *testing.T) {
	t.Setenv("RAZORPAY_SECRET", "s3cr3t")
	r := newPaymentRouter(t)

	w := postJSON(t, r, "/api/payment/verify", `{"razorpay_order_id": "order_1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required payment details")
	assert.Contains(t, w.Body.String(), "payment_id")
	assert.Contains(t, w.Body.String(), "signature")
}

func TestVerifyPaymentUnconfiguredSecret(t *testing.T) {
	t.Setenv("RAZORPAY_SECRET", "")
	r := newPaymentRouter(t)

	body := `{"razorpay_order_id": "order_1", "razorpay_payment_id": "pay_1", "razorpay_signature": "deadbeef"}`
	w := postJSON(t, r, "/api/payment/verify", body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Payment verification configuration error")
}

func TestVerifyPaymentInvalidSignature(t *testing.T) {
	t.Setenv("RAZORPAY_SECRET", "s3cr3t")
	t.Setenv("RAZORPAY_KEY_ID", "")
	r := newPaymentRouter(t)

	body := `{"razorpay_order_id": "order_1", "razorpay_payment_id": "pay_1", "razorpay_signature": "deadbeef"}`
	w := postJSON(t, r, "/api/payment/verify", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid signature")

	// A signature computed under a different secret is also rejected.
	wrong := razorpay.ExpectedSignature("order_1", "pay_1", "other-secret")
	body = `{"razorpay_order_id": "order_1", "razorpay_payment_id": "pay_1", "razorpay_signature": "` + wrong + `"}`
	w = postJSON(t, r, "/api/payment/verify", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
