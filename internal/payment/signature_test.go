package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignatureValid(t *testing.T) {
	sig := sign("order_123", "pay_456", "secret")
	if !VerifySignature("order_123", "pay_456", sig, "secret") {
		t.Fatalf("expected valid signature to verify")
	}
}

func TestVerifySignatureMutationFlips(t *testing.T) {
	sig := sign("order_123", "pay_456", "secret")

	mutated := []byte(sig)
	if mutated[0] == 'a' {
		mutated[0] = 'b'
	} else {
		mutated[0] = 'a'
	}
	if VerifySignature("order_123", "pay_456", string(mutated), "secret") {
		t.Fatalf("mutated signature should not verify")
	}
	if VerifySignature("order_124", "pay_456", sig, "secret") {
		t.Fatalf("mutated order id should not verify")
	}
	if VerifySignature("order_123", "pay_457", sig, "secret") {
		t.Fatalf("mutated payment id should not verify")
	}
	if VerifySignature("order_123", "pay_456", sig, "other-secret") {
		t.Fatalf("wrong secret should not verify")
	}
}

func TestVerifySignatureLengthMismatch(t *testing.T) {
	sig := sign("order_123", "pay_456", "secret")
	if VerifySignature("order_123", "pay_456", sig[:len(sig)-1], "secret") {
		t.Fatalf("truncated signature should not verify")
	}
	if VerifySignature("order_123", "pay_456", "", "secret") {
		t.Fatalf("empty signature should not verify")
	}
}
