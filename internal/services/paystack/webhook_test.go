package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	secret := "sk_test_secret"
	body := []byte(`{"event":"charge.success","data":{"reference":"TXN-1-x"}}`)

	t.Run("accepts a matching signature", func(t *testing.T) {
		err := ValidateSignature(secret, body, sign(secret, body))
		assert.NoError(t, err)
	})

	t.Run("rejects a tampered body", func(t *testing.T) {
		signature := sign(secret, body)
		tampered := []byte(`{"event":"charge.success","data":{"reference":"TXN-2-y"}}`)

		err := ValidateSignature(secret, tampered, signature)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("rejects a signature under the wrong key", func(t *testing.T) {
		err := ValidateSignature(secret, body, sign("sk_test_other", body))
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		err := ValidateSignature(secret, body, "")
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})
}
