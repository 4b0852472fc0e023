// internal/domain/investment.go
package domain

import (
	"fmt"
)

// Investment is an investment product definition. Immutable after creation;
// ids are assigned by the repository, starting at 1.
type Investment struct {
	ID                  int64
	TaxRate             int64 // interest per accrual, integer percent
	MinimumInitialFunds int64 // cents required to open a wallet
}

// String renders the product for listing output.
func (i Investment) String() string {
	return fmt.Sprintf("Investment{id: %d, taxa: %d%%, aporte inicial: %d}", i.ID, i.TaxRate, i.MinimumInitialFunds)
}

// InvestmentWallet is one account's holding of an investment product. At most
// one wallet may exist per account at a time; the repository enforces that.
type InvestmentWallet struct {
	wallet
	investment Investment
	account    *AccountWallet
}

// NewInvestmentWallet opens a holding of investment for account, seeding it
// by moving the product's minimum initial funds out of the account. Fails
// with ErrInsufficientFunds when the account cannot cover the entry amount,
// leaving both wallets untouched.
func NewInvestmentWallet(investment Investment, account *AccountWallet, audit MoneyAudit) (*InvestmentWallet, error) {
	w := &InvestmentWallet{wallet: newWallet(), investment: investment, account: account}
	if err := move(&account.wallet, &w.wallet, investment.MinimumInitialFunds, audit); err != nil {
		return nil, err
	}
	return w, nil
}

// Investment returns the product this wallet holds.
func (w *InvestmentWallet) Investment() Investment {
	return w.investment
}

// Account returns the account that owns this wallet.
func (w *InvestmentWallet) Account() *AccountWallet {
	return w.account
}

// Balance returns the invested funds in cents.
func (w *InvestmentWallet) Balance() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// Contribute moves amount from the owning account into the wallet.
func (w *InvestmentWallet) Contribute(amount int64, audit MoneyAudit) error {
	return move(&w.account.wallet, &w.wallet, amount, audit)
}

// Redeem moves amount back to the owning account and returns the remaining
// invested balance, which the repository uses to retire emptied wallets.
func (w *InvestmentWallet) Redeem(amount int64, audit MoneyAudit) (int64, error) {
	if err := move(&w.wallet, &w.account.wallet, amount, audit); err != nil {
		return 0, err
	}
	return w.Balance(), nil
}

// Accrue credits one interest period: floor(balance * taxRate / 100) new
// cents, recorded under the given audit. Returns the amount credited.
// Calling it twice compounds twice; it is a periodic trigger, not a
// recomputation.
func (w *InvestmentWallet) Accrue(audit MoneyAudit) int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	interest := w.balance * w.investment.TaxRate / 100
	w.credit(interest, audit)
	return interest
}

// History returns the wallet's movements grouped by audit timestamp.
func (w *InvestmentWallet) History() []HistoryGroup {
	w.mu.Lock()
	defer w.mu.Unlock()
	return groupByTimestamp(w.entries)
}

// String renders the wallet for listing output.
func (w *InvestmentWallet) String() string {
	return fmt.Sprintf("InvestmentWallet{investimento: %d, pix: %v, saldo: %d}",
		w.investment.ID, w.account.PixKeys(), w.Balance())
}
