package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/sullhouse/operative-connect-lite/internal/apitest"
	"github.com/sullhouse/operative-connect-lite/internal/infrastructure/tokenstore"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// setupCLITest isolates the CLI from the user's environment and points it at a fake API.
// It returns the fake API and the session directory.
func setupCLITest(t *testing.T) (*apitest.Server, string) {
	t.Helper()
	dir := t.TempDir()
	sessionDir := filepath.Join(dir, "session")

	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv("OCLCTL_SESSION_DIR", sessionDir)
	t.Setenv("NO_COLOR", "1")
	t.Chdir(dir)

	api := apitest.NewServer(t)
	t.Setenv("OCLCTL_API_BASE_URL", api.URL())
	return api, sessionDir
}

func resetCommandState() {
	cfgFile, apiURL, colorFlag = "", "", "auto"
	verbose, quiet = false, false
	cfg, logger = nil, nil
	loginFlags, registerFlags = credentialFlags{}, credentialFlags{}
	resetFlags(rootCmd)
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCLI executes oclctl with args, feeding stdin to the command.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	resetCommandState()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := ExecuteContext(context.Background())
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// storeToken writes a token for username straight into the session directory.
func storeToken(t *testing.T, api *apitest.Server, sessionDir, username string, ttl time.Duration) string {
	t.Helper()
	token := api.IssueToken(username, ttl)
	require.NoError(t, tokenstore.NewFileStore(sessionDir).Save(token))
	return token
}

func storedToken(t *testing.T, sessionDir string) string {
	t.Helper()
	token, err := tokenstore.NewFileStore(sessionDir).Load()
	require.NoError(t, err)
	return token
}
