// Copyright (c) 2026 Fittessness. All rights reserved.

package sec

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// CookieSigner authenticates session cookie values with HMAC-SHA256.
//
// # Scope
//
// The server-side secret protects the transport channel only: it proves the
// cookie value was issued by this server and was not tampered with. It plays
// no role in password hashing.
type CookieSigner struct {
	secret []byte
}

// NewCookieSigner creates a signer from the configured session secret.
func NewCookieSigner(secret string) *CookieSigner {
	return &CookieSigner{secret: []byte(secret)}
}

// ErrBadSignature is returned when a cookie value fails verification.
var ErrBadSignature = errors.New("sec: cookie signature mismatch")

// Sign returns "token.hexmac" — the raw session token with its MAC appended.
func (signer *CookieSigner) Sign(token string) string {
	return token + "." + signer.mac(token)
}

// Verify splits a signed cookie value, checks the MAC in constant time, and
// returns the embedded session token.
func (signer *CookieSigner) Verify(signedValue string) (string, error) {
	token, gotMAC, found := strings.Cut(signedValue, ".")
	if !found || token == "" {
		return "", ErrBadSignature
	}

	// hmac.Equal is constant-time; never compare MACs with ==.
	if !hmac.Equal([]byte(gotMAC), []byte(signer.mac(token))) {
		return "", ErrBadSignature
	}

	return token, nil
}

// mac computes the hex-encoded HMAC-SHA256 of value.
func (signer *CookieSigner) mac(value string) string {
	h := hmac.New(sha256.New, signer.secret)
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil))
}
