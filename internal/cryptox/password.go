// Package cryptox holds the password hashing used for patient and caregiver
// accounts: a random per-account salt and an argon2id hash of the password.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	HashSize = 32

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// NewSalt returns a fresh random salt of SaltSize bytes.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives the stored hash for password under salt.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, HashSize)
}

// VerifyPassword reports whether password hashes to hash under salt.
// The comparison runs in constant time.
func VerifyPassword(password, salt, hash []byte) bool {
	candidate := HashPassword(password, salt)
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
