// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is fixed; raising it only affects newly stored hashes since
// bcrypt embeds the cost in the hash string.
const hashCost = 10

var _ PasswordHasherInterface = (*BcryptHasher)(nil)

// BcryptHasher produces randomly salted bcrypt digests and verifies
// plaintexts against them in constant time.
type BcryptHasher struct{}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether plaintext matches the stored hash. A malformed
// hash, e.g. from data corruption, yields false rather than an error so
// nothing leaks past the service boundary.
func (h *BcryptHasher) Compare(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}
