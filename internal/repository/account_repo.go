// internal/repository/account_repo.go
package repository

import (
	"atombank/internal/domain"
)

// AccountRepository owns every account wallet in the ledger.
type AccountRepository interface {
	// Create registers a new account seeded with initialDeposit cents.
	// Pix keys must be a non-empty set of distinct, unused, non-empty strings.
	Create(pixKeys []string, initialDeposit int64) (*domain.AccountWallet, error)
	// FindByPix retrieves the account holding the exact pix key.
	FindByPix(pix string) (*domain.AccountWallet, error)
	// Deposit credits amount to the account identified by pix.
	Deposit(pix string, amount int64) error
	// Withdraw debits amount from the account identified by pix.
	Withdraw(pix string, amount int64) error
	// Transfer moves amount between two accounts as one audited operation.
	Transfer(sourcePix, targetPix string, amount int64) error
	// History returns the account's movements grouped by audit timestamp,
	// chronologically.
	History(pix string) ([]domain.HistoryGroup, error)
	// List returns all accounts in creation order.
	List() []*domain.AccountWallet
}
