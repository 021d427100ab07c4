package crypto

// PasswordHasher is the single place where account passwords are peppered
// and hashed. Centralizing the contract here keeps the authentication flow
// and the account-creation services from ever diverging on hash format.
type PasswordHasher interface {
	// Hash derives a salted, peppered bcrypt hash from plaintext.
	// Each call produces a fresh random salt, so the same plaintext yields
	// a different hash on every call. Returns an error for empty input.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches storedHash. It returns false
	// (never an error) for empty inputs or a malformed stored hash.
	Verify(plaintext, storedHash string) bool
}
