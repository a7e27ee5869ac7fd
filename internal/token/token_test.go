package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/device-hub/internal/token"
)

func newCodec(t *testing.T) *token.Codec {
	t.Helper()

	codec, err := token.NewCodec("unit-test-secret")
	require.NoError(t, err)
	return codec
}

func TestNewCodec_EmptySecret(t *testing.T) {
	_, err := token.NewCodec("")
	assert.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := newCodec(t)

	tests := []struct {
		name      string
		purpose   string
		subjectID uint
	}{
		{name: "auth purpose", purpose: token.PurposeAuth, subjectID: 1},
		{name: "other purpose", purpose: "password-reset", subjectID: 42},
		{name: "zero subject", purpose: token.PurposeAuth, subjectID: 0},
		{name: "large subject", purpose: token.PurposeAuth, subjectID: 1<<31 + 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generated, err := codec.Generate(tt.purpose, tt.subjectID)
			require.NoError(t, err)
			assert.NotEmpty(t, generated)

			assert.True(t, codec.Validate(generated, tt.purpose))

			subject, ok := codec.Subject(generated, tt.purpose)
			require.True(t, ok)
			assert.Equal(t, tt.subjectID, subject)
		})
	}
}

func TestCodec_PurposeIsolation(t *testing.T) {
	codec := newCodec(t)

	generated, err := codec.Generate(token.PurposeAuth, 1)
	require.NoError(t, err)

	assert.False(t, codec.Validate(generated, "other"))

	_, ok := codec.Subject(generated, "other")
	assert.False(t, ok)
}

func TestCodec_TamperSensitivity(t *testing.T) {
	codec := newCodec(t)

	generated, err := codec.Generate(token.PurposeAuth, 7)
	require.NoError(t, err)

	// Flipping any byte must invalidate the token.
	for i := 0; i < len(generated); i++ {
		mutated := []byte(generated)
		mutated[i] ^= 0x01
		assert.False(t, codec.Validate(string(mutated), token.PurposeAuth),
			"token accepted after flipping byte %d", i)
	}
}

// The final base64url character of an HS256 signature carries two unused
// trailing bits. A lenient decoder maps '0' and '1' (and '4'/'5', '8'/'9')
// to the same signature bytes, so a string-level mutation could still
// verify. The codec must reject such tokens.
func TestCodec_TamperedFinalSignatureChar(t *testing.T) {
	codec := newCodec(t)

	for i := 0; i < 500; i++ {
		generated, err := codec.Generate(token.PurposeAuth, 7)
		require.NoError(t, err)

		last := generated[len(generated)-1]
		if last != '0' && last != '4' && last != '8' {
			continue
		}

		mutated := []byte(generated)
		mutated[len(mutated)-1] ^= 0x01
		assert.False(t, codec.Validate(string(mutated), token.PurposeAuth),
			"token accepted after mutating final signature char %q", last)
		return
	}
	t.Fatal("no generated signature ended in a character with unused trailing bits")
}

func TestCodec_MalformedInput(t *testing.T) {
	codec := newCodec(t)

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "garbage", input: "not-a-token"},
		{name: "truncated", input: "eyJhbGciOiJIUzI1NiJ9"},
		{name: "unsigned", input: "eyJhbGciOiJub25lIn0.eyJwdXJwb3NlIjoiYXV0aCIsInN1YiI6IjEifQ."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, codec.Validate(tt.input, token.PurposeAuth))
		})
	}
}

func TestCodec_WrongKey(t *testing.T) {
	codec := newCodec(t)
	other, err := token.NewCodec("a-different-secret")
	require.NoError(t, err)

	generated, err := codec.Generate(token.PurposeAuth, 1)
	require.NoError(t, err)

	assert.False(t, other.Validate(generated, token.PurposeAuth))
}

func TestCodec_SignatureSwap(t *testing.T) {
	codec := newCodec(t)

	first, err := codec.Generate(token.PurposeAuth, 1)
	require.NoError(t, err)
	second, err := codec.Generate("password-reset", 1)
	require.NoError(t, err)

	// Grafting one token's signature onto another's payload must fail.
	firstParts := strings.Split(first, ".")
	secondParts := strings.Split(second, ".")
	require.Len(t, firstParts, 3)
	require.Len(t, secondParts, 3)

	franken := strings.Join([]string{secondParts[0], secondParts[1], firstParts[2]}, ".")
	assert.False(t, codec.Validate(franken, "password-reset"))
}
