//go:build unit

package razorpay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"majestic-manor/internal/infra/gateway/razorpay"
	"majestic-manor/internal/pkg/config"
	"majestic-manor/internal/pkg/errs"
)

const (
	testKeyID     = "rzp_test_key"
	testKeySecret = "rzp_test_secret"
)

func newTestClient(t *testing.T, baseURL string) *razorpay.Client {
	t.Helper()
	client, err := razorpay.New(config.GatewayConfig{
		BaseURL:   baseURL,
		KeyID:     testKeyID,
		KeySecret: testKeySecret,
		Timeout:   5 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := razorpay.New(config.GatewayConfig{BaseURL: "https://example.test"})
	assert.Error(t, err)
}

func TestCreateOrder_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, testKeyID, user)
		assert.Equal(t, testKeySecret, pass)

		var body struct {
			Amount         int64  `json:"amount"`
			Currency       string `json:"currency"`
			PaymentCapture int    `json:"payment_capture"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(150000), body.Amount)
		assert.Equal(t, "INR", body.Currency)
		assert.Equal(t, 1, body.PaymentCapture)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_MhZ7aBcDeFgHiJ","amount":150000,"currency":"INR","status":"created"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	orderID, err := client.CreateOrder(context.Background(), 150000, "INR", true)

	require.NoError(t, err)
	assert.Equal(t, "order_MhZ7aBcDeFgHiJ", orderID)
}

func TestCreateOrder_DeferredCapture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			PaymentCapture int `json:"payment_capture"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 0, body.PaymentCapture)

		_, _ = w.Write([]byte(`{"id":"order_deferred"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	orderID, err := client.CreateOrder(context.Background(), 99000, "INR", false)

	require.NoError(t, err)
	assert.Equal(t, "order_deferred", orderID)
}

func TestCreateOrder_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "unauthorized maps to config error",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`,
			wantErr: errs.ErrGatewayConfig,
		},
		{
			name:    "bad request maps to config error",
			status:  http.StatusBadRequest,
			body:    `{"error":{"code":"BAD_REQUEST_ERROR","description":"amount must be at least 100"}}`,
			wantErr: errs.ErrGatewayConfig,
		},
		{
			name:    "server error maps to transport error",
			status:  http.StatusInternalServerError,
			body:    `{"error":{"code":"SERVER_ERROR","description":"internal error"}}`,
			wantErr: errs.ErrGatewayTransport,
		},
		{
			name:    "gateway timeout maps to transport error",
			status:  http.StatusBadGateway,
			body:    ``,
			wantErr: errs.ErrGatewayTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newTestClient(t, srv.URL)

			_, err := client.CreateOrder(context.Background(), 150000, "INR", true)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateOrder_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"created"}`)) // missing order id
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.CreateOrder(context.Background(), 150000, "INR", true)

	assert.ErrorIs(t, err, errs.ErrGatewayTransport)
}

func TestCreateOrder_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // dead endpoint

	client := newTestClient(t, srv.URL)

	_, err := client.CreateOrder(context.Background(), 150000, "INR", true)

	assert.ErrorIs(t, err, errs.ErrGatewayTransport)
}

func TestVerifySignature(t *testing.T) {
	client := newTestClient(t, "https://example.test")

	orderID := "order_MhZ7aBcDeFgHiJ"
	paymentID := "pay_MhZ8xYzAbCdEfG"

	t.Run("valid signature passes", func(t *testing.T) {
		sig := razorpay.Sign(testKeySecret, orderID, paymentID)
		assert.NoError(t, client.VerifySignature(orderID, paymentID, sig))
	})

	t.Run("tampered signature rejected", func(t *testing.T) {
		sig := razorpay.Sign(testKeySecret, orderID, paymentID)
		tampered := sig[:len(sig)-1] + "0"
		if tampered == sig {
			tampered = sig[:len(sig)-1] + "1"
		}
		err := client.VerifySignature(orderID, paymentID, tampered)
		assert.ErrorIs(t, err, errs.ErrSignatureInvalid)
	})

	t.Run("signature under wrong secret rejected", func(t *testing.T) {
		sig := razorpay.Sign("some-other-secret", orderID, paymentID)
		err := client.VerifySignature(orderID, paymentID, sig)
		assert.ErrorIs(t, err, errs.ErrSignatureInvalid)
	})

	t.Run("payment id swap rejected", func(t *testing.T) {
		sig := razorpay.Sign(testKeySecret, orderID, paymentID)
		err := client.VerifySignature(orderID, "pay_other", sig)
		assert.ErrorIs(t, err, errs.ErrSignatureInvalid)
	})

	t.Run("empty signature rejected", func(t *testing.T) {
		err := client.VerifySignature(orderID, paymentID, "")
		assert.ErrorIs(t, err, errs.ErrSignatureInvalid)
	})
}
