package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cashcare-dev/cashcare/internal/commands"
)

// runCashcare executes the CLI in-process and returns stdout.
func runCashcare(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

// newRepo initializes a repo in a temp dir and returns its path.
func newRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runCashcare(t, "init", dir, "--name", "Asha", "--currency", "INR")
	require.NoError(t, err)
	return dir
}

func copyFixture(t *testing.T, name, dst string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "importer", "testdata", name))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, data, 0o644))
}
