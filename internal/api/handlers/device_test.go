package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/device-hub/internal/testutil"
)

type deviceResponse struct {
	ID        uint            `json:"id"`
	OwnerID   uint            `json:"ownerId"`
	Name      string          `json:"name"`
	IPAddress string          `json:"ipAddress"`
	Status    json.RawMessage `json:"status"`
}

func createDevice(t *testing.T, ts *testutil.TestServer, client *http.Client, name string) deviceResponse {
	t.Helper()

	resp := postJSON(t, client, ts.APIURL("/devices"), map[string]string{
		"name":      name,
		"ipAddress": "10.0.0.5",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var device deviceResponse
	testutil.AssertJSONResponse(t, resp, &device)
	return device
}

func TestDeviceHandler_RequiresAuth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/devices"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDeviceHandler_CreateAndList(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, client := testutil.NewUserBuilder().WithName("deviceowner").BuildAndLogin(t, ts)

	device := createDevice(t, ts, client, "living room plug")
	assert.Equal(t, user.ID, device.OwnerID)
	assert.Equal(t, "living room plug", device.Name)

	resp, err := client.Get(ts.APIURL("/devices"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var devices []deviceResponse
	testutil.AssertJSONResponse(t, resp, &devices)
	assert.Len(t, devices, 1)
}

func TestDeviceHandler_OwnershipEnforced(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, ownerClient := testutil.NewUserBuilder().WithName("owner").BuildAndLogin(t, ts)
	_, strangerClient := testutil.NewUserBuilder().WithName("stranger").BuildAndLogin(t, ts)

	device := createDevice(t, ts, ownerClient, "plug")

	resp, err := strangerClient.Get(ts.APIURL(fmt.Sprintf("/devices/%d", device.ID)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDeviceHandler_EventsFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, client := testutil.NewUserBuilder().WithName("eventowner").BuildAndLogin(t, ts)

	device := createDevice(t, ts, client, "plug")

	resp := postJSON(t, client, ts.APIURL(fmt.Sprintf("/devices/%d/events", device.ID)), map[string]string{
		"name":        "power_on",
		"description": "turned on from the app",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	list, err := client.Get(ts.APIURL(fmt.Sprintf("/devices/%d/events", device.ID)))
	require.NoError(t, err)
	defer list.Body.Close()
	require.Equal(t, http.StatusOK, list.StatusCode)

	var events []struct {
		Name string `json:"name"`
	}
	testutil.AssertJSONResponse(t, list, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "power_on", events[0].Name)
}
