package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateOrderSendsAuthAndParsesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key_id" || pass != "key_secret" {
			t.Errorf("missing or wrong basic auth: %q/%q", user, pass)
		}
		if r.URL.Path != "/v1/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if amt, _ := req["amount"].(float64); amt != 250000 {
			t.Errorf("amount = %v, want 250000", req["amount"])
		}
		if cur, _ := req["currency"].(string); cur != "INR" {
			t.Errorf("currency = %v, want INR", req["currency"])
		}

		json.NewEncoder(w).Encode(Order{ID: "order_xyz", Amount: 250000, Currency: "INR", Status: "created"})
	}))
	defer srv.Close()

	c := Client{KeyID: "key_id", KeySecret: "key_secret", BaseURL: srv.URL}
	order, err := c.CreateOrder(context.Background(), 250000, "INR")
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	if order.ID != "order_xyz" {
		t.Fatalf("order id = %q, want order_xyz", order.ID)
	}
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"auth failed"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := Client{KeyID: "bad", KeySecret: "bad", BaseURL: srv.URL}
	if _, err := c.CreateOrder(context.Background(), 1000, "INR"); err == nil {
		t.Fatalf("expected error for non-200 gateway response")
	}
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	c := Client{KeyID: "k", KeySecret: "s"}
	if _, err := c.CreateOrder(context.Background(), 0, "INR"); err == nil {
		t.Fatalf("expected error for zero amount")
	}
}
