// Copyright (c) 2026 Fittessness. All rights reserved.

// Package normalize canonicalizes user-supplied text before storage and lookup.
//
// Email addresses and names are stored exactly once in canonical form so that
// uniqueness checks and later lookups compare like with like.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Email canonicalizes an email address: trimmed and lowercased.
//
// Lowercasing the whole address (not only the domain) matches how the
// registration flow has always deduplicated accounts.
func Email(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Name canonicalizes a free-text name field: trimmed and NFC-normalized.
//
// NFC keeps visually identical names (composed vs decomposed accents)
// byte-identical in the database.
func Name(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
