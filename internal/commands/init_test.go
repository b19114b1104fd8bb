package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashcare-dev/cashcare/internal/accounts"
	"github.com/cashcare-dev/cashcare/internal/config"
	"github.com/cashcare-dev/cashcare/internal/gitops"
)

func TestInit_CreatesStructure(t *testing.T) {
	dir := newRepo(t)

	for _, d := range []string{"accounts", "rules", "logs", "import", filepath.Join("import", "processed")} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
	assert.FileExists(t, filepath.Join(dir, "import", ".gitkeep"))
}

func TestInit_Config(t *testing.T) {
	dir := newRepo(t)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "Asha", cfg.Profile.Name)
	assert.Equal(t, "INR", cfg.Profile.Currency)
	assert.False(t, cfg.Git.AutoCommit)
}

func TestInit_EmptyAccountsAndRules(t *testing.T) {
	dir := newRepo(t)

	svc, err := accounts.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, svc.All())

	data, err := os.ReadFile(filepath.Join(dir, config.DefaultRulesPath))
	require.NoError(t, err)
	assert.Equal(t, "rules: []\n", string(data))
}

func TestInit_Gitignore(t *testing.T) {
	dir := newRepo(t)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	for _, pattern := range []string{"import/*.csv", ".env"} {
		assert.Contains(t, string(data), pattern)
	}
}

func TestInit_RequiresName(t *testing.T) {
	_, err := runCashcare(t, "init", t.TempDir())
	require.Error(t, err, "init without --name should fail")
}

func TestInit_RejectsBadCurrency(t *testing.T) {
	_, err := runCashcare(t, "init", t.TempDir(), "--name", "Asha", "--currency", "rupee")
	assert.ErrorContains(t, err, "invalid currency")
}

func TestInit_RefusesExistingRepo(t *testing.T) {
	dir := newRepo(t)
	_, err := runCashcare(t, "init", dir, "--name", "Again")
	assert.ErrorContains(t, err, "already exists")
}

func TestInit_Git(t *testing.T) {
	if !gitops.Available() {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	_, err := runCashcare(t, "init", dir, "--name", "Asha", "--git")
	require.NoError(t, err)

	assert.True(t, gitops.IsRepo(dir))
	msg, err := gitops.Open(dir, gitops.Author{}).LastMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "init: Initialize Asha", msg)

	_, err = runCashcare(t, "--repo", dir, "accounts", "add", "--name", "HDFC Bank", "--id", "acc-hdfc-1")
	require.NoError(t, err)
	msg, err = gitops.Open(dir, gitops.Author{}).LastMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "accounts: Add HDFC Bank", msg)
}
