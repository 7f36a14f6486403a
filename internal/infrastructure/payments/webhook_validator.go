package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignatureValidator checks the x-signature header Mercado Pago attaches
// to webhook deliveries.
//
// The header carries "ts=<timestamp>,v1=<hmac>"; v1 is the HMAC-SHA256 of
// the manifest "id:<data.id>;request-id:<x-request-id>;ts:<timestamp>;"
// keyed with the account's webhook secret.
type SignatureValidator struct {
	secret string
}

func NewSignatureValidator(secret string) *SignatureValidator {
	return &SignatureValidator{secret: secret}
}

// Enabled reports whether a webhook secret is configured. Without one the
// validation step is a pass-through (development mode).
func (v *SignatureValidator) Enabled() bool {
	return v.secret != ""
}

// Validate checks the signature for one delivery. Missing header parts
// fail closed when a secret is configured.
func (v *SignatureValidator) Validate(xSignature, xRequestID, dataID string) bool {
	if !v.Enabled() {
		return true
	}
	if xSignature == "" {
		return false
	}

	ts, hash := parseSignatureHeader(xSignature)
	if ts == "" || hash == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write([]byte(buildManifest(dataID, xRequestID, ts)))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(hash), []byte(expected))
}

func parseSignatureHeader(header string) (ts, hash string) {
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "ts":
			ts = value
		case "v1":
			hash = value
		}
	}
	return ts, hash
}

func buildManifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + dataID + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	b.WriteString("ts:" + ts + ";")
	return b.String()
}
