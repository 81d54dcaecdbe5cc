package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.razorpay.com"

// Client creates orders on the payment gateway ahead of checkout.
type Client struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	HTTP      *http.Client
}

// Order is the slice of the gateway order we consume.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

func (c Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultBaseURL
}

func (c Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: 15 * time.Second}
}

// CreateOrder registers a new order with the gateway. Amount is in minor
// units (paise); the gateway refuses anything else.
func (c Client) CreateOrder(ctx context.Context, amountMinor int64, currency string) (Order, error) {
	if amountMinor <= 0 {
		return Order{}, fmt.Errorf("order amount must be positive")
	}
	if currency == "" {
		currency = "INR"
	}

	body, err := json.Marshal(orderRequest{
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  "order_" + uuid.NewString(),
	})
	if err != nil {
		return Order{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return Order{}, err
	}
	req.SetBasicAuth(c.KeyID, c.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return Order{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Order{}, fmt.Errorf("gateway order create failed: status=%d body=%s", resp.StatusCode, raw)
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return Order{}, err
	}
	if order.ID == "" {
		return Order{}, fmt.Errorf("gateway order create returned no id")
	}
	return order, nil
}
