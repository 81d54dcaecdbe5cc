package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrInvalidSignature rejects a callback whose signature does not match the
// expected HMAC. Nothing may be persisted once this is returned.
var ErrInvalidSignature = errors.New("invalid payment signature")

// VerifySignature checks the gateway callback signature: the hex digest of
// HMAC-SHA256(secret, orderID|paymentID). The compare is constant-time and
// false on any mismatch, including length.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
