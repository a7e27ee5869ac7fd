package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/voltlab/device-hub/internal/domain"
	"github.com/voltlab/device-hub/internal/password"
	"github.com/voltlab/device-hub/internal/repository"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name          string
	password      string
	role          domain.Role
	sessionToken  *string
	lastLoginDate time.Time
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password: "testpassword123",
		role:     domain.RoleStandard,
	}
}

// WithName sets the user name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(pass string) *UserBuilder {
	b.password = pass
	return b
}

// WithRole sets the role
func (b *UserBuilder) WithRole(role domain.Role) *UserBuilder {
	b.role = role
	return b
}

// WithSession gives the user an active session token and login time
func (b *UserBuilder) WithSession(token string, lastLogin time.Time) *UserBuilder {
	b.sessionToken = &token
	b.lastLoginDate = lastLogin
	return b
}

// Build creates the user in the repository and returns the user with the
// raw password
func (b *UserBuilder) Build(t *testing.T, repo repository.UserRepository) (*domain.User, string) {
	t.Helper()

	hash, err := password.Hash(b.password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Name:          b.name,
		PasswordHash:  hash,
		Role:          b.role,
		SessionToken:  b.sessionToken,
		LastLoginDate: b.lastLoginDate,
	}

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndLogin creates the user and logs in through the API, returning the
// user and a client holding the session cookie.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, *http.Client) {
	t.Helper()

	user, rawPassword := b.Build(t, ts.Repos.User)

	client := ts.Client(t)
	body, _ := json.Marshal(map[string]string{
		"name":     user.Name,
		"password": rawPassword,
	})
	resp, err := client.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login returned status %d", resp.StatusCode)
	}

	return user, client
}

// AssertJSONResponse decodes a JSON response body into target
func AssertJSONResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
}
