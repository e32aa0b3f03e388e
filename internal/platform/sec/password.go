// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package sec

import (
	"crypto/rand"
	"fmt"
)

// # Temporary Password Generation

// passwordAlphabet is the pool of characters used for generated credentials.
// It mixes upper/lowercase letters, digits and a small set of symbols so the
// result satisfies common complexity rules while staying typeable.
const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

// TemporaryPasswordLength is the length of credentials issued by a reset.
const TemporaryPasswordLength = 12

/*
GenerateTemporaryPassword creates a random plain-text password suitable for
one-time delivery to a user after a credential reset.

Entropy is drawn from [crypto/rand]; one random byte is consumed per output
character and mapped onto the alphabet. The function never returns a
partially-filled password: any failure of the underlying entropy source is
surfaced as an error.

Parameters:
  - length: number of characters to generate. Must be positive.

Returns:
  - The generated password.
  - An error if length is not positive or the entropy source fails.
*/
func GenerateTemporaryPassword(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("sec: password length must be positive, got %d", length)
	}

	randomBytes := make([]byte, length)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("sec: failed to read entropy for password: %w", err)
	}

	password := make([]byte, length)
	for index, randomByte := range randomBytes {
		password[index] = passwordAlphabet[int(randomByte)%len(passwordAlphabet)]
	}

	return string(password), nil
}
