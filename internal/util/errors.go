// internal/util/errors.go
package util

import "errors"

// Domain errors of the ledger core. Repository operations wrap these with
// fmt.Errorf("...: %w", err) context; callers match with IsError.
var (
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvestmentNotFound    = errors.New("investment not found")
	ErrWalletNotFound        = errors.New("investment wallet not found")
	ErrAccountWithInvestment = errors.New("account already has an active investment")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrSameWallet            = errors.New("source and target wallets are the same")
	ErrInvalidAmount         = errors.New("amount must not be negative")
	ErrInvalidPixKeys        = errors.New("at least one non-empty pix key is required")
	ErrPixKeyInUse           = errors.New("pix key already registered to another account")
)

// IsError reports whether err wraps target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
