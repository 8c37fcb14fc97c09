package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"majestic-manor/internal/pkg/errs"
)

// VerifySignature checks that the callback genuinely came from the gateway:
// the signature must be the hex HMAC-SHA256 of "<order_id>|<payment_id>"
// under the shared key secret. Comparison is constant time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) error {
	expected := signPayload(c.keySecret, orderID+"|"+paymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errs.ErrSignatureInvalid
	}
	return nil
}

func signPayload(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Sign is exported for tests and tooling that need to produce a valid
// callback signature for a given order/payment pair.
func Sign(secret, orderID, paymentID string) string {
	return signPayload(secret, orderID+"|"+paymentID)
}
