// internal/repository/memory/account_mem.go
package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"atombank/internal/domain"
	"atombank/internal/repository"
	"atombank/internal/util"
)

// Audit descriptions recorded by account operations.
const (
	descInitialDeposit = "Depósito inicial"
	descDeposit        = "Depósito"
	descWithdraw       = "Saque"
	descTransfer       = "Transferência via pix"
)

// AccountRepository implements repository.AccountRepository with volatile,
// process-lifetime state.
type AccountRepository struct {
	mu sync.RWMutex
	// accounts keeps creation order; byPix is the exact pix key index.
	accounts []*domain.AccountWallet
	byPix    map[string]*domain.AccountWallet
}

// NewAccountRepository creates an empty account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{byPix: make(map[string]*domain.AccountWallet)}
}

// Create registers a new account seeded with initialDeposit cents under a
// fresh "Depósito inicial" audit. All pix keys are claimed atomically: an
// invalid or taken key leaves the repository unchanged.
func (r *AccountRepository) Create(pixKeys []string, initialDeposit int64) (*domain.AccountWallet, error) {
	if initialDeposit < 0 {
		return nil, fmt.Errorf("create account: %w", util.ErrInvalidAmount)
	}
	if len(pixKeys) == 0 {
		return nil, fmt.Errorf("create account: %w", util.ErrInvalidPixKeys)
	}
	seen := make(map[string]struct{}, len(pixKeys))
	for _, key := range pixKeys {
		if key == "" {
			return nil, fmt.Errorf("create account: %w", util.ErrInvalidPixKeys)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("create account: duplicate pix key %q: %w", key, util.ErrInvalidPixKeys)
		}
		seen[key] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range pixKeys {
		if _, taken := r.byPix[key]; taken {
			return nil, fmt.Errorf("create account: pix key %q: %w", key, util.ErrPixKeyInUse)
		}
	}

	wallet := domain.NewAccountWallet(pixKeys)
	audit := domain.NewAudit(uuid.New(), domain.ServiceAccount, descInitialDeposit)
	if err := wallet.Credit(initialDeposit, audit); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	r.accounts = append(r.accounts, wallet)
	for _, key := range pixKeys {
		r.byPix[key] = wallet
	}
	return wallet, nil
}

// FindByPix retrieves the account holding the exact pix key.
func (r *AccountRepository) FindByPix(pix string) (*domain.AccountWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wallet, ok := r.byPix[pix]
	if !ok {
		return nil, fmt.Errorf("pix key %q: %w", pix, util.ErrAccountNotFound)
	}
	return wallet, nil
}

// Deposit credits amount to the account identified by pix, under a fresh
// "Depósito" audit.
func (r *AccountRepository) Deposit(pix string, amount int64) error {
	wallet, err := r.FindByPix(pix)
	if err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	audit := domain.NewAudit(uuid.New(), domain.ServiceAccount, descDeposit)
	if err := wallet.Credit(amount, audit); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	return nil
}

// Withdraw debits amount from the account identified by pix. The funds check
// and the debit are atomic on the wallet, so a failed withdrawal leaves the
// balance untouched.
func (r *AccountRepository) Withdraw(pix string, amount int64) error {
	wallet, err := r.FindByPix(pix)
	if err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}
	audit := domain.NewAudit(uuid.New(), domain.ServiceAccount, descWithdraw)
	if err := wallet.Debit(amount, audit); err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}
	return nil
}

// Transfer moves amount between two accounts as one atomic operation; both
// sides record the same "Transferência via pix" audit.
func (r *AccountRepository) Transfer(sourcePix, targetPix string, amount int64) error {
	source, err := r.FindByPix(sourcePix)
	if err != nil {
		return fmt.Errorf("transfer: source: %w", err)
	}
	target, err := r.FindByPix(targetPix)
	if err != nil {
		return fmt.Errorf("transfer: target: %w", err)
	}
	audit := domain.NewAudit(uuid.New(), domain.ServiceAccount, descTransfer)
	if err := source.TransferTo(target, amount, audit); err != nil {
		return fmt.Errorf("transfer: %w", err)
	}
	return nil
}

// History returns the account's movements grouped by audit timestamp.
func (r *AccountRepository) History(pix string) ([]domain.HistoryGroup, error) {
	wallet, err := r.FindByPix(pix)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return wallet.History(), nil
}

// List returns every account in creation order.
func (r *AccountRepository) List() []*domain.AccountWallet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.AccountWallet, len(r.accounts))
	copy(out, r.accounts)
	return out
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
