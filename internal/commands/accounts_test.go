package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashcare-dev/cashcare/internal/accounts"
	"github.com/cashcare-dev/cashcare/internal/model"
)

func TestAccounts_AddAndList(t *testing.T) {
	dir := newRepo(t)

	out, err := runCashcare(t, "--repo", dir, "accounts", "add",
		"--id", "acc-hdfc-1", "--name", "HDFC Bank", "--type", "checking", "--balance", "1200.50")
	require.NoError(t, err)
	assert.Contains(t, out, "Added account HDFC Bank (acc-hdfc-1)")

	_, err = runCashcare(t, "--repo", dir, "accounts", "add", "--name", "Visa", "--type", "credit_card", "--balance", "-200")
	require.NoError(t, err)

	svc, err := accounts.Load(dir)
	require.NoError(t, err)
	require.Len(t, svc.All(), 2)
	visa, ok := svc.Resolve("visa")
	require.True(t, ok)
	assert.Equal(t, model.AccountTypeCreditCard, visa.Type)
	assert.Equal(t, "INR", visa.Currency, "currency defaults to the profile")
	assert.NotEmpty(t, visa.ID)

	out, err = runCashcare(t, "--repo", dir, "accounts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "HDFC Bank")
	assert.Contains(t, out, "1200.50")
	assert.Contains(t, out, "1000.50", "total balance")
}

func TestAccounts_AddDuplicate(t *testing.T) {
	dir := newRepo(t)
	_, err := runCashcare(t, "--repo", dir, "accounts", "add", "--name", "HDFC Bank")
	require.NoError(t, err)

	_, err = runCashcare(t, "--repo", dir, "accounts", "add", "--name", "hdfc bank")
	assert.ErrorIs(t, err, accounts.ErrDuplicate)
}

func TestAccounts_AddInvalid(t *testing.T) {
	dir := newRepo(t)

	_, err := runCashcare(t, "--repo", dir, "accounts", "add", "--name", "X", "--type", "piggy_bank")
	assert.ErrorContains(t, err, "unknown account type")

	_, err = runCashcare(t, "--repo", dir, "accounts", "add", "--name", "X", "--balance", "lots")
	assert.ErrorContains(t, err, "invalid balance")
}
