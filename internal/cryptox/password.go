// Package cryptox handles password credentials for the account ledger.
// Accounts never store the password itself: registration derives a key from
// the password and a per-account random salt, and stores a verifier of that
// key. Login repeats the derivation and compares verifiers in constant time.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

const SaltSize = 16

// NewSalt returns a fresh random salt.
func NewSalt() []byte {
	b := make([]byte, SaltSize)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the platform is broken.
		panic(err)
	}
	return b
}

// DeriveKey stretches a password with argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value stored in the ledger.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// VerifyPassword reports whether password+salt reproduce the stored verifier.
// The comparison is constant-time.
func VerifyPassword(password, salt, verifier []byte) bool {
	candidate := MakeVerifier(DeriveKey(password, salt))
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}
