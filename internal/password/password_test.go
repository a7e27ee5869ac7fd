package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/device-hub/internal/password"
)

func TestHashAndVerify(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "simple", plaintext: "pw123"},
		{name: "long", plaintext: "a-fairly-long-password-with-some-entropy-42"},
		{name: "unicode", plaintext: "pässwörd✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := password.Hash(tt.plaintext)
			require.NoError(t, err)
			assert.NotEqual(t, tt.plaintext, digest)

			assert.True(t, password.Verify(tt.plaintext, digest))
			assert.False(t, password.Verify(tt.plaintext+"x", digest))
		})
	}
}

func TestHash_SaltsDiffer(t *testing.T) {
	first, err := password.Hash("same-password")
	require.NoError(t, err)
	second, err := password.Hash("same-password")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two digests of one password differ.
	assert.NotEqual(t, first, second)
	assert.True(t, password.Verify("same-password", first))
	assert.True(t, password.Verify("same-password", second))
}

func TestVerify_MalformedDigest(t *testing.T) {
	assert.False(t, password.Verify("anything", ""))
	assert.False(t, password.Verify("anything", "not-a-bcrypt-digest"))
}
