package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupVersionTest(t *testing.T) {
	t.Helper()
	setupCLITest(t)
	SetVersion("1.2.3")
	SetBuildInfo("abc1234", "2026-02-06T07:16:38Z")
	t.Cleanup(func() {
		SetVersion("dev")
		SetBuildInfo("unknown", "unknown")
	})
}

func TestVersionOutput_ContainsFields(t *testing.T) {
	setupVersionTest(t)

	res := runCLI(t, "", "version")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "oclctl version 1.2.3")
	for _, field := range []string{"commit:", "built:", "go version:", "platform:"} {
		assert.Contains(t, res.stdout, field)
	}
}

func TestVersionShort(t *testing.T) {
	setupVersionTest(t)

	res := runCLI(t, "", "version", "--short")

	require.NoError(t, res.err)
	assert.Equal(t, "1.2.3", strings.TrimSpace(res.stdout))
}

func TestVersionJSON(t *testing.T) {
	setupVersionTest(t)

	res := runCLI(t, "", "version", "--json")

	require.NoError(t, res.err)
	var result map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &result))
	assert.Equal(t, "1.2.3", result["version"])
	assert.Equal(t, "abc1234", result["commit"])
	for _, key := range []string{"built", "goVersion", "platform"} {
		assert.Contains(t, result, key)
	}
}

func TestVersion_IgnoresBrokenConfig(t *testing.T) {
	setupVersionTest(t)
	t.Setenv("OCLCTL_LOGGING_LEVEL", "loud")

	res := runCLI(t, "", "version", "--short")

	assert.NoError(t, res.err)
}

func TestCompletion(t *testing.T) {
	setupCLITest(t)

	res := runCLI(t, "", "completion", "bash")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "oclctl")

	res = runCLI(t, "", "completion", "tcsh")
	assert.Error(t, res.err)
}
