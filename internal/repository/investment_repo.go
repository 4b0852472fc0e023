// internal/repository/investment_repo.go
package repository

import (
	"atombank/internal/domain"
)

// InvestmentRepository owns every investment product and every active
// investment wallet.
type InvestmentRepository interface {
	// Create registers a new product with an auto-incrementing id (from 1).
	Create(taxRate, minimumInitialFunds int64) (domain.Investment, error)
	// FindByID retrieves a product by id.
	FindByID(id int64) (domain.Investment, error)
	// InitInvestment enrolls the account in the product, moving the
	// product's minimum initial funds from the account into a new wallet.
	// An account may hold at most one active wallet.
	InitInvestment(account *domain.AccountWallet, investmentID int64) (*domain.InvestmentWallet, error)
	// Deposit moves amount from the account identified by pix into its
	// active investment wallet.
	Deposit(pix string, amount int64) error
	// Withdraw moves amount from the wallet back to its account; a wallet
	// redeemed down to exactly zero is removed from the repository.
	Withdraw(pix string, amount int64) error
	// AccrueInterest credits one interest period to every active wallet.
	AccrueInterest()
	// FindWalletByAccountPix retrieves the active wallet of the account
	// holding the exact pix key.
	FindWalletByAccountPix(pix string) (*domain.InvestmentWallet, error)
	// List returns all products in creation order.
	List() []domain.Investment
	// ListWallets returns all active wallets in creation order.
	ListWallets() []*domain.InvestmentWallet
}
