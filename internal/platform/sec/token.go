// Copyright (c) 2026 Fittessness. All rights reserved.

package sec

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateSecureToken returns a URL-safe, cryptographically random identifier
// built from byteLength bytes of entropy.
//
// Session tokens must be unguessable; 32 bytes gives 256 bits of entropy,
// far beyond brute-force reach.
func GenerateSecureToken(byteLength int) (string, error) {
	buffer := make([]byte, byteLength)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("sec: failed to generate secure token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buffer), nil
}
