package cmd

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sullhouse/operative-connect-lite/internal/gateway"
	"github.com/sullhouse/operative-connect-lite/internal/output"
)

const defaultTTL = time.Hour

func TestSessionCheck_NoToken(t *testing.T) {
	api, _ := setupCLITest(t)

	res := runCLI(t, "", "session", "check")

	assert.Equal(t, output.ExitNotLoggedIn, ExitCode(res.err))
	assert.Contains(t, res.stdout, "Session: logged out")
	assert.Zero(t, api.TotalCalls(), "no token means no network call")
}

func TestSessionCheck_ValidToken(t *testing.T) {
	api, sessionDir := setupCLITest(t)
	storeToken(t, api, sessionDir, "alice", defaultTTL)

	res := runCLI(t, "", "session", "check")

	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Session: logged in")
	assert.Equal(t, 1, api.Calls(gateway.PathValidateToken))
}

func TestSessionCheck_ExpiredToken(t *testing.T) {
	api, sessionDir := setupCLITest(t)
	storeToken(t, api, sessionDir, "alice", -time.Minute)

	res := runCLI(t, "", "session", "check")

	assert.Equal(t, output.ExitNotLoggedIn, ExitCode(res.err))
	assert.Contains(t, res.stdout, "Session: logged out")
	assert.Equal(t, 1, api.Calls(gateway.PathValidateToken))
}

func TestSessionCheck_APIUnreachable(t *testing.T) {
	api, sessionDir := setupCLITest(t)
	storeToken(t, api, sessionDir, "alice", defaultTTL)

	res := runCLI(t, "", "--api-url", "http://127.0.0.1:1", "session", "check")

	assert.Equal(t, output.ExitNotLoggedIn, ExitCode(res.err))
	assert.Contains(t, res.stdout, "Session: logged out")
}

func TestSessionCheck_ExpiringSoon(t *testing.T) {
	api, sessionDir := setupCLITest(t)
	storeToken(t, api, sessionDir, "alice", 2*time.Minute)

	res := runCLI(t, "", "session", "check")

	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Session expires in")
	assert.Contains(t, res.stdout, "oclctl session refresh")
}

func TestSessionRefresh(t *testing.T) {
	api, sessionDir := setupCLITest(t)
	original := storeToken(t, api, sessionDir, "alice", 2*time.Minute)

	res := runCLI(t, "", "session", "refresh")

	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Token refreshed successfully!")
	assert.NotEqual(t, original, storedToken(t, sessionDir))
	assert.Equal(t, 1, api.Calls(gateway.PathRefresh))
}

func TestSessionShow_JSON(t *testing.T) {
	api, sessionDir := setupCLITest(t)
	storeToken(t, api, sessionDir, "alice", defaultTTL)

	res := runCLI(t, "", "session", "show", "--json")

	require.NoError(t, res.err, res.stderr)
	var info sessionInfo
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &info))
	assert.Equal(t, "alice", info.Username)
	assert.Equal(t, "active", info.Status)
	assert.WithinDuration(t, time.Now().Add(defaultTTL), info.ExpiresAt, time.Minute)
	assert.Zero(t, api.TotalCalls(), "show decodes the token locally")
}

func TestSessionShow_Expired(t *testing.T) {
	api, sessionDir := setupCLITest(t)
	storeToken(t, api, sessionDir, "alice", -time.Minute)

	res := runCLI(t, "", "session", "show")

	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "alice")
	assert.Contains(t, res.stdout, "expired")
}
