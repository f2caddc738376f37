// Copyright (c) 2026 Fittessness. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fittessness/fittessness/internal/platform/sec"
)

/*
TestPasswordHasher_RoundTrip verifies that a hashed password verifies against
the original plain text and nothing else.
*/
func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := sec.NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash)

	match, err := hasher.Verify("Str0ng!pass", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = hasher.Verify("Wr0ng!pass", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

/*
TestPasswordHasher_UniqueSalts verifies that hashing the same password twice
never yields the same hash.
*/
func TestPasswordHasher_UniqueSalts(t *testing.T) {
	hasher := sec.NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("Str0ng!pass")
	require.NoError(t, err)

	second, err := hasher.Hash("Str0ng!pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

/*
TestPasswordHasher_CorruptHash verifies that a malformed stored hash is
reported as an error, not a silent mismatch.
*/
func TestPasswordHasher_CorruptHash(t *testing.T) {
	hasher := sec.NewPasswordHasher(bcrypt.MinCost)

	match, err := hasher.Verify("Str0ng!pass", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, match)
}

/*
TestPasswordHasher_CostClamping verifies that out-of-range cost factors fall
back to the library default instead of breaking hashing.
*/
func TestPasswordHasher_CostClamping(t *testing.T) {
	for _, cost := range []int{-1, 0, 1000} {
		hasher := sec.NewPasswordHasher(cost)

		hash, err := hasher.Hash("Str0ng!pass")
		require.NoError(t, err)

		match, err := hasher.Verify("Str0ng!pass", hash)
		require.NoError(t, err)
		assert.True(t, match)
	}
}

/*
TestPasswordHasher_BurnCompare ensures the timing-equalization helper is safe
to call; it must never panic or alter state.
*/
func TestPasswordHasher_BurnCompare(t *testing.T) {
	hasher := sec.NewPasswordHasher(bcrypt.MinCost)

	assert.NotPanics(t, func() {
		hasher.BurnCompare("anything")
		hasher.BurnCompare("")
	})
}
