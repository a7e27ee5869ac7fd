package testutil

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/voltlab/device-hub/internal/api"
	"github.com/voltlab/device-hub/internal/config"
	"github.com/voltlab/device-hub/internal/repository"
	"github.com/voltlab/device-hub/internal/repository/memory"
	"github.com/voltlab/device-hub/internal/service"
	"github.com/voltlab/device-hub/internal/token"
	"github.com/voltlab/device-hub/internal/websocket"
)

// TestConfig returns a configuration suitable for testing
func TestConfig() *config.Config {
	return &config.Config{
		Port:           "0", // Random port
		Environment:    "test",
		TokenSecret:    "test-token-secret-key-for-testing-only",
		SessionTTLDays: 7,
	}
}

// TestServer holds all components for handler-level testing. It runs on the
// in-memory repositories, so no database is needed.
type TestServer struct {
	Server   *httptest.Server
	Users    *memory.UserRepository
	Devices  *memory.DeviceRepository
	Events   *memory.EventRepository
	Repos    *repository.Repositories
	Services *service.Services
	Codec    *token.Codec
	Hub      *websocket.Hub
	Config   *config.Config
}

// NewTestServer creates a complete test server with all dependencies
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := TestConfig()

	users, devices, events := memory.NewRepositories()
	repos := &repository.Repositories{User: users, Device: devices, Event: events}

	codec, err := token.NewCodec(cfg.TokenSecret)
	if err != nil {
		t.Fatalf("failed to create token codec: %v", err)
	}

	hub := websocket.NewHub()
	go hub.Run()

	services := service.NewServices(repos, codec, hub, cfg)
	router := api.NewRouter(services, hub, cfg)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		Users:    users,
		Devices:  devices,
		Events:   events,
		Repos:    repos,
		Services: services,
		Codec:    codec,
		Hub:      hub,
		Config:   cfg,
	}

	t.Cleanup(func() {
		server.Close()
		hub.Stop()
	})

	return ts
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return ts.Server.URL + "/api/v1" + path
}

// Client returns an HTTP client with a cookie jar, so the session cookie
// set by login is carried on subsequent requests.
func (ts *TestServer) Client(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}
