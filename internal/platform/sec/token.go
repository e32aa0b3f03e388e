// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// # Opaque Tokens

// GenerateSecureToken creates a cryptographically random opaque token,
// hex-encoded, of 2*byteLength characters. Used for refresh tokens where
// the value itself carries no claims.
func GenerateSecureToken(byteLength int) (string, error) {
	randomBytes := make([]byte, byteLength)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("sec: failed to read entropy for token: %w", err)
	}
	return hex.EncodeToString(randomBytes), nil
}

// HashToken returns the hex-encoded SHA-256 digest of a token.
//
// Opaque tokens are stored server-side only as digests, so a leaked session
// store cannot be replayed against the API.
func HashToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}
