package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerify(t *testing.T) {
	h := NewHasher()

	digest, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.True(t, h.Verify("secret123", digest))
	assert.False(t, h.Verify("secret124", digest))
}

func TestHashSaltsPerCall(t *testing.T) {
	h := NewHasher()

	d1, err := h.Hash("secret123")
	require.NoError(t, err)

	d2, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
	assert.True(t, h.Verify("secret123", d1))
	assert.True(t, h.Verify("secret123", d2))
}

func TestVerifyFailsClosed(t *testing.T) {
	h := NewHasher()

	for _, e := range []string{
		"",
		"not-a-digest",
		"$argon2id$v=19$m=65536,t=3,p=2$short",
		"$argon2id$v=19$bogus$AAAA$AAAA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$AAAA",
		"$argon2id$v=19$m=65536,t=3,p=2$AAAA$!!!",
	} {
		assert.False(t, h.Verify("secret123", e), "digest %q should not verify", e)
	}
}
