// Package token issues and checks the signed session tokens carried in the
// auth cookie. A token binds a purpose tag and a subject (user id) under an
// HMAC signature; it carries its issuance time but no expiry — session
// expiry is enforced against the user's last login, not the token itself.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PurposeAuth is the purpose tag for login session tokens.
const PurposeAuth = "auth"

type claims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

type Codec struct {
	secret []byte
	parser *jwt.Parser
}

// NewCodec builds a codec around the process-wide signing secret. An empty
// secret is a configuration fault and fails construction.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is empty")
	}
	return &Codec{
		secret: []byte(secret),
		// Lenient base64 ignores the unused trailing bits of the final
		// signature character, so two distinct strings can decode to the
		// same signature.
		parser: jwt.NewParser(
			jwt.WithStrictDecoding(),
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		),
	}, nil
}

// Generate signs a token binding purpose and subjectID, stamped with the
// current time.
func (c *Codec) Generate(purpose string, subjectID uint) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatUint(uint64(subjectID), 10),
			IssuedAt: jwt.NewNumericDate(time.Now()),
			// Nonce: two logins in the same second must still yield
			// distinct tokens.
			ID: uuid.NewString(),
		},
	})
	return t.SignedString(c.secret)
}

// Validate reports whether tokenString is a well-formed token signed with
// this codec's secret and carrying the expected purpose. Malformed, tampered
// or empty input is false, never an error.
func (c *Codec) Validate(tokenString, expectedPurpose string) bool {
	cl, err := c.parse(tokenString)
	if err != nil {
		return false
	}
	return cl.Purpose == expectedPurpose
}

// Subject returns the user id a valid token is bound to. The second return
// is false whenever Validate would have rejected the token.
func (c *Codec) Subject(tokenString, expectedPurpose string) (uint, bool) {
	cl, err := c.parse(tokenString)
	if err != nil || cl.Purpose != expectedPurpose {
		return 0, false
	}
	id, err := strconv.ParseUint(cl.Subject, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (c *Codec) parse(tokenString string) (*claims, error) {
	cl := &claims{}
	t, err := c.parser.ParseWithClaims(tokenString, cl, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, errors.New("invalid token")
	}
	return cl, nil
}
