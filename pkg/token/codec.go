package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

const (
	// adminRole is the single privileged role marker baked into tokens.
	adminRole = 1

	// lifetime is the fixed validity window for issued tokens.
	lifetime = 7 * 24 * time.Hour
)

type payload struct {
	Role int   `json:"role"`
	Exp  int64 `json:"exp"`
}

// Codec issues and verifies the self-contained admin bearer credential.
// The token is the base64url-encoded JSON payload, a dot, and the
// base64url-encoded HMAC-SHA-256 of the encoded payload. There is no
// revocation state: logout is purely client-side.
type Codec struct {
	secret []byte
}

// NewCodec returns a codec signing with the given process-wide secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue returns a token carrying the admin role, valid for seven days
// from the provided instant.
func (c *Codec) Issue(now time.Time) (string, error) {
	body, err := json.Marshal(payload{Role: adminRole, Exp: now.UnixMilli() + lifetime.Milliseconds()})
	if err != nil {
		return "", err
	}
	encoded := base64.RawURLEncoding.EncodeToString(body)
	return encoded + "." + c.sign(encoded), nil
}

// Verify reports whether the token is authentic, carries the admin role
// and expires strictly after the provided instant. Malformed input of
// any kind yields false, never an error.
func (c *Codec) Verify(token string, now time.Time) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	if !hmac.Equal([]byte(c.sign(parts[0])), []byte(parts[1])) {
		return false
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return false
	}
	return p.Role == adminRole && p.Exp > now.UnixMilli()
}

func (c *Codec) sign(encodedPayload string) string {
	mac := hmac.New(sha256.New, c.secret)
	_, _ = mac.Write([]byte(encodedPayload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
