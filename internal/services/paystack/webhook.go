package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
)

// ErrInvalidSignature is returned when a webhook body does not match its
// signature header. The payload must be discarded without processing.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// ValidateSignature checks the HMAC-SHA512 hex digest Paystack computes
// over the exact raw body with the account secret key. The comparison is
// constant-time.
func ValidateSignature(secretKey string, body []byte, signature string) error {
	if signature == "" {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
