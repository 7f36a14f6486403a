package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signManifest(secret, manifest string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestSignatureValidator_Validate(t *testing.T) {
	const secret = "test-secret"

	t.Run("disabled without secret", func(t *testing.T) {
		v := NewSignatureValidator("")
		if v.Enabled() {
			t.Fatal("expected disabled validator")
		}
		if !v.Validate("", "", "123") {
			t.Fatal("expected pass-through when no secret is configured")
		}
	})

	t.Run("valid signature", func(t *testing.T) {
		v := NewSignatureValidator(secret)
		hash := signManifest(secret, "id:123;request-id:req-1;ts:1700000000;")
		header := "ts=1700000000,v1=" + hash

		if !v.Validate(header, "req-1", "123") {
			t.Fatal("expected valid signature to pass")
		}
	})

	t.Run("valid signature without request id", func(t *testing.T) {
		v := NewSignatureValidator(secret)
		hash := signManifest(secret, "id:123;ts:1700000000;")
		header := "ts=1700000000,v1=" + hash

		if !v.Validate(header, "", "123") {
			t.Fatal("expected valid signature to pass")
		}
	})

	t.Run("tampered id rejected", func(t *testing.T) {
		v := NewSignatureValidator(secret)
		hash := signManifest(secret, "id:123;request-id:req-1;ts:1700000000;")
		header := "ts=1700000000,v1=" + hash

		if v.Validate(header, "req-1", "456") {
			t.Fatal("expected tampered id to fail")
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		v := NewSignatureValidator(secret)
		hash := signManifest("other-secret", "id:123;request-id:req-1;ts:1700000000;")
		header := "ts=1700000000,v1=" + hash

		if v.Validate(header, "req-1", "123") {
			t.Fatal("expected wrong secret to fail")
		}
	})

	t.Run("missing header fails closed", func(t *testing.T) {
		v := NewSignatureValidator(secret)
		if v.Validate("", "req-1", "123") {
			t.Fatal("expected missing header to fail")
		}
	})

	t.Run("malformed header fails closed", func(t *testing.T) {
		v := NewSignatureValidator(secret)
		if v.Validate("garbage", "req-1", "123") {
			t.Fatal("expected malformed header to fail")
		}
		if v.Validate("ts=1700000000", "req-1", "123") {
			t.Fatal("expected header without v1 to fail")
		}
	})

	t.Run("header spacing tolerated", func(t *testing.T) {
		v := NewSignatureValidator(secret)
		hash := signManifest(secret, "id:123;request-id:req-1;ts:1700000000;")
		header := "ts=1700000000, v1=" + hash

		if !v.Validate(header, "req-1", "123") {
			t.Fatal("expected spaced header to pass")
		}
	})
}
