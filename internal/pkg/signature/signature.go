package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Verifier authenticates payment callbacks. The signed message is orderID|paymentID,
// HMAC-SHA256 keyed by the shared gateway secret, hex encoded.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify fails closed: a missing secret, a missing field or a malformed signature is invalid.
func (v *Verifier) Verify(orderID, paymentID, sig string) bool {
	if len(v.secret) == 0 || orderID == "" || paymentID == "" || sig == "" {
		return false
	}
	given, err := hex.DecodeString(strings.TrimSpace(sig))
	if err != nil {
		return false
	}
	return hmac.Equal(given, v.mac(orderID, paymentID))
}

// Sign returns the hex signature the gateway would send. Empty when no secret is configured.
func (v *Verifier) Sign(orderID, paymentID string) string {
	if len(v.secret) == 0 {
		return ""
	}
	return hex.EncodeToString(v.mac(orderID, paymentID))
}

func (v *Verifier) mac(orderID, paymentID string) []byte {
	h := hmac.New(sha256.New, v.secret)
	h.Write([]byte(orderID + "|" + paymentID))
	return h.Sum(nil)
}
