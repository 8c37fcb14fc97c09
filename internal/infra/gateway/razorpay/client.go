package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"majestic-manor/internal/observability"
	"majestic-manor/internal/pkg/config"
	"majestic-manor/internal/pkg/errs"
)

// Client talks to the Razorpay Orders API over its REST interface with basic
// auth. Failures collapse into a closed set: errs.ErrGatewayConfig for
// credential/request rejections and errs.ErrGatewayTransport for everything
// else, so callers never depend on gateway SDK exception types.
type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	hc        *http.Client
}

func New(cfg config.GatewayConfig) (*Client, error) {
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, fmt.Errorf("razorpay credentials are required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		hc:        &http.Client{Timeout: timeout},
	}, nil
}

// KeyID is the public half of the credentials, handed to the browser checkout.
func (c *Client) KeyID() string {
	return c.keyID
}

type orderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	PaymentCapture int    `json:"payment_capture"`
}

type orderResponse struct {
	ID string `json:"id"`
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder opens a remote payment order for amountPaise in the smallest
// currency subunit. immediateCapture maps to payment_capture=1.
func (c *Client) CreateOrder(ctx context.Context, amountPaise int64, currency string, immediateCapture bool) (string, error) {
	capture := 0
	if immediateCapture {
		capture = 1
	}

	body, err := json.Marshal(orderRequest{
		Amount:         amountPaise,
		Currency:       currency,
		PaymentCapture: capture,
	})
	if err != nil {
		return "", errs.Mark(err, errs.ErrGatewayTransport)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", errs.Mark(err, errs.ErrGatewayTransport)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	observability.GatewayLatency.WithLabelValues("create_order").Observe(time.Since(start).Seconds())
	if err != nil {
		observability.ObserveGateway("create_order", "transport_error")
		return "", errs.Mark(err, errs.ErrGatewayTransport)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		observability.ObserveGateway("create_order", "transport_error")
		return "", errs.Mark(err, errs.ErrGatewayTransport)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var order orderResponse
		if err := json.Unmarshal(raw, &order); err != nil || order.ID == "" {
			observability.ObserveGateway("create_order", "bad_response")
			return "", errs.Mark(errs.New("malformed order response"), errs.ErrGatewayTransport)
		}
		observability.ObserveGateway("create_order", "ok")
		return order.ID, nil

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		// Razorpay rejects bad credentials and malformed requests here; the
		// original system treated both as an authentication/config problem.
		observability.ObserveGateway("create_order", "config_error")
		return "", errs.Mark(errs.New(describeAPIError(raw, resp.StatusCode)), errs.ErrGatewayConfig)

	default:
		observability.ObserveGateway("create_order", "transport_error")
		return "", errs.Mark(errs.New(describeAPIError(raw, resp.StatusCode)), errs.ErrGatewayTransport)
	}
}

func describeAPIError(raw []byte, status int) string {
	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Description != "" {
		return fmt.Sprintf("gateway returned %d: %s", status, apiErr.Error.Description)
	}
	return fmt.Sprintf("gateway returned %d", status)
}
