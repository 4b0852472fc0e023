// internal/repository/memory/account_mem_test.go
package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atombank/internal/util"
)

func TestAccountCreateValidation(t *testing.T) {
	repo := NewAccountRepository()

	_, err := repo.Create(nil, 100)
	assert.ErrorIs(t, err, util.ErrInvalidPixKeys)

	_, err = repo.Create([]string{""}, 100)
	assert.ErrorIs(t, err, util.ErrInvalidPixKeys)

	_, err = repo.Create([]string{"a1", "a1"}, 100)
	assert.ErrorIs(t, err, util.ErrInvalidPixKeys)

	_, err = repo.Create([]string{"a1"}, -1)
	assert.ErrorIs(t, err, util.ErrInvalidAmount)

	_, err = repo.Create([]string{"a1"}, 100)
	require.NoError(t, err)

	// Pix keys are never reused across accounts.
	_, err = repo.Create([]string{"a1", "other"}, 100)
	assert.ErrorIs(t, err, util.ErrPixKeyInUse)
	_, err = repo.FindByPix("other")
	assert.ErrorIs(t, err, util.ErrAccountNotFound, "failed create must not claim any key")
}

func TestAccountFindByPixExactMatch(t *testing.T) {
	repo := NewAccountRepository()
	_, err := repo.Create([]string{"maria@example.com"}, 100)
	require.NoError(t, err)

	_, err = repo.FindByPix("maria")
	assert.ErrorIs(t, err, util.ErrAccountNotFound, "substring of a key must not resolve")

	wallet, err := repo.FindByPix("maria@example.com")
	require.NoError(t, err)
	assert.True(t, wallet.HasPixKey("maria@example.com"))
}

// Covers the account scenario: create a1 with 1000, deposit 500, overdraw,
// then transfer everything to a fresh a2.
func TestAccountDepositWithdrawTransferScenario(t *testing.T) {
	repo := NewAccountRepository()

	a1, err := repo.Create([]string{"a1"}, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), a1.Balance())

	require.NoError(t, repo.Deposit("a1", 500))
	assert.Equal(t, int64(1500), a1.Balance())

	err = repo.Withdraw("a1", 2000)
	assert.ErrorIs(t, err, util.ErrInsufficientFunds)
	assert.Equal(t, int64(1500), a1.Balance())

	a2, err := repo.Create([]string{"a2"}, 0)
	require.NoError(t, err)

	require.NoError(t, repo.Transfer("a1", "a2", 1500))
	assert.Equal(t, int64(0), a1.Balance())
	assert.Equal(t, int64(1500), a2.Balance())
}

func TestAccountTransferConservation(t *testing.T) {
	repo := NewAccountRepository()
	a1, err := repo.Create([]string{"a1"}, 700)
	require.NoError(t, err)
	a2, err := repo.Create([]string{"a2"}, 300)
	require.NoError(t, err)

	before := a1.Balance() + a2.Balance()
	require.NoError(t, repo.Transfer("a1", "a2", 250))
	assert.Equal(t, before, a1.Balance()+a2.Balance())

	assert.ErrorIs(t, repo.Transfer("a1", "a2", 9999), util.ErrInsufficientFunds)
	assert.Equal(t, before, a1.Balance()+a2.Balance())
}

func TestAccountTransferUnknownAccounts(t *testing.T) {
	repo := NewAccountRepository()
	_, err := repo.Create([]string{"a1"}, 100)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Transfer("ghost", "a1", 10), util.ErrAccountNotFound)
	assert.ErrorIs(t, repo.Transfer("a1", "ghost", 10), util.ErrAccountNotFound)
	wallet, _ := repo.FindByPix("a1")
	assert.Equal(t, int64(100), wallet.Balance())
}

func TestAccountTransferToSameAccount(t *testing.T) {
	repo := NewAccountRepository()
	_, err := repo.Create([]string{"a1", "a1-alt"}, 100)
	require.NoError(t, err)

	// Both keys resolve to the same wallet; the transfer must refuse.
	assert.ErrorIs(t, repo.Transfer("a1", "a1-alt", 10), util.ErrSameWallet)
	wallet, _ := repo.FindByPix("a1")
	assert.Equal(t, int64(100), wallet.Balance())
}

func TestAccountHistoryCompleteness(t *testing.T) {
	repo := NewAccountRepository()
	_, err := repo.Create([]string{"a1"}, 1000)
	require.NoError(t, err)
	_, err = repo.Create([]string{"a2"}, 0)
	require.NoError(t, err)

	require.NoError(t, repo.Deposit("a1", 10))
	require.NoError(t, repo.Withdraw("a1", 5))
	require.NoError(t, repo.Transfer("a1", "a2", 100))

	// 4 successful operations touched a1: creation, deposit, withdraw, transfer.
	groups, err := repo.History("a1")
	require.NoError(t, err)
	require.Len(t, groups, 4)
	for _, g := range groups {
		assert.NotEmpty(t, g.Entries)
	}

	// The receiving side sees its creation plus the incoming transfer.
	groups, err = repo.History("a2")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, int64(100), groups[1].Entries[0].Amount)

	_, err = repo.History("ghost")
	assert.ErrorIs(t, err, util.ErrAccountNotFound)
}

func TestAccountListInsertionOrder(t *testing.T) {
	repo := NewAccountRepository()
	for _, pix := range []string{"c", "a", "b"} {
		_, err := repo.Create([]string{pix}, 0)
		require.NoError(t, err)
	}

	list := repo.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c"}, list[0].PixKeys())
	assert.Equal(t, []string{"a"}, list[1].PixKeys())
	assert.Equal(t, []string{"b"}, list[2].PixKeys())
}

func TestAccountDepositRejectsNegative(t *testing.T) {
	repo := NewAccountRepository()
	_, err := repo.Create([]string{"a1"}, 100)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Deposit("a1", -10), util.ErrInvalidAmount)
	assert.ErrorIs(t, repo.Withdraw("a1", -10), util.ErrInvalidAmount)
	assert.ErrorIs(t, repo.Deposit("ghost", 10), util.ErrAccountNotFound)
	assert.ErrorIs(t, repo.Withdraw("ghost", 10), util.ErrAccountNotFound)
}
