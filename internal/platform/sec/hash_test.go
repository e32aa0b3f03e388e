// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barcodepapel/api/internal/platform/sec"
)

/*
TestHashPassword verifies that hashing is salted: the same plaintext must
yield distinct hashes that both verify.
*/
func TestHashPassword(t *testing.T) {
	first, err := sec.HashPassword("Tr3s!Marias")
	require.NoError(t, err)

	second, err := sec.HashPassword("Tr3s!Marias")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, sec.CheckPasswordHash("Tr3s!Marias", first))
	assert.True(t, sec.CheckPasswordHash("Tr3s!Marias", second))
}

func TestCheckPasswordHash_Mismatch(t *testing.T) {
	hash, err := sec.HashPassword("correct-password")
	require.NoError(t, err)

	assert.False(t, sec.CheckPasswordHash("wrong-password", hash))
	assert.False(t, sec.CheckPasswordHash("correct-password", "not-a-bcrypt-hash"))
	assert.False(t, sec.CheckPasswordHash("", hash))
}
