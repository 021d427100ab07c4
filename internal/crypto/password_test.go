package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melodia-app/melodia-server/internal/config"
)

// bcrypt.MinCost keeps these tests fast; the work factor does not change
// any of the verified properties.
func newTestHasher() PasswordHasher {
	return NewPasswordHasher(config.App{
		PasswordPepper:   "unit-test-pepper",
		PasswordHashCost: 4,
	})
}

func TestHash_RoundTrip(t *testing.T) {
	h := newTestHasher()

	hash, err := h.Hash("secret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, h.Verify("secret", hash))
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	h := newTestHasher()

	first, err := h.Hash("secret")
	require.NoError(t, err)
	second, err := h.Hash("secret")
	require.NoError(t, err)

	// non-determinism is required: same plaintext, different hashes
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("secret", first))
	assert.True(t, h.Verify("secret", second))
}

func TestHash_EmptyPlaintext(t *testing.T) {
	h := newTestHasher()

	_, err := h.Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerify_WrongPassword(t *testing.T) {
	h := newTestHasher()

	hash, err := h.Hash("secret")
	require.NoError(t, err)

	assert.False(t, h.Verify("wrong", hash))
}

func TestVerify_EmptyInputs(t *testing.T) {
	h := newTestHasher()

	hash, err := h.Hash("secret")
	require.NoError(t, err)

	assert.False(t, h.Verify("", hash))
	assert.False(t, h.Verify("secret", ""))
	assert.False(t, h.Verify("", ""))
}

func TestVerify_MalformedStoredHash(t *testing.T) {
	h := newTestHasher()

	// must report a mismatch, never panic or error out
	assert.False(t, h.Verify("secret", "not-a-bcrypt-hash"))
}

func TestVerify_PepperMatters(t *testing.T) {
	h := newTestHasher()
	other := NewPasswordHasher(config.App{
		PasswordPepper:   "a-different-pepper",
		PasswordHashCost: 4,
	})

	hash, err := h.Hash("secret")
	require.NoError(t, err)

	// the same plaintext under a different pepper must not verify
	assert.False(t, other.Verify("secret", hash))
}
