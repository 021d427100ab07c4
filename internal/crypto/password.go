// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the credential hashing used by the melodia
// server. Passwords are concatenated with a server-held pepper and hashed
// with bcrypt; the per-hash salt is generated by bcrypt itself.
package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/melodia-app/melodia-server/internal/config"
)

// ErrEmptyPassword is returned by [PasswordHasher.Hash] when the plaintext
// password is empty.
var ErrEmptyPassword = errors.New("password cannot be empty")

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	// pepper is appended to every plaintext before hashing. It never
	// appears in the stored hash, so database contents alone are not
	// sufficient for an offline attack.
	pepper string

	// cost is the bcrypt work factor. Tuned per deployment via config.
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] from the application
// configuration. The pepper and cost are fixed at construction time; the
// hasher is safe for concurrent use.
func NewPasswordHasher(cfg config.App) PasswordHasher {
	return &passwordHasher{
		pepper: cfg.PasswordPepper,
		cost:   cfg.PasswordHashCost,
	}
}

// Hash implements [PasswordHasher]. bcrypt generates a fresh random salt on
// every call, so hashing the same plaintext twice yields two different
// strings that both verify.
func (p *passwordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext+p.pepper), p.cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher]. The comparison delegates to bcrypt's
// constant-time CompareHashAndPassword; a malformed stored hash simply
// reports a mismatch.
func (p *passwordHasher) Verify(plaintext, storedHash string) bool {
	if plaintext == "" || storedHash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext+p.pepper)) == nil
}
