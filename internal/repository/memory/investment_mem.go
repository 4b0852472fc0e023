// internal/repository/memory/investment_mem.go
package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"atombank/internal/domain"
	"atombank/internal/repository"
	"atombank/internal/util"
)

// Audit descriptions recorded by investment operations.
const (
	descEnrollment   = "Investimento inicial"
	descContribution = "Aplicação de investimento"
	descRedemption   = "Resgate de investimento"
	descInterest     = "Rendimento de investimento"
)

// InvestmentRepository implements repository.InvestmentRepository with
// volatile, process-lifetime state. It resolves pix keys through the account
// repository it is constructed with.
type InvestmentRepository struct {
	mu     sync.Mutex
	nextID int64
	// investments keeps creation order and never shrinks; wallets shrinks
	// when a holding is fully redeemed.
	investments []domain.Investment
	wallets     []*domain.InvestmentWallet
	accounts    repository.AccountRepository
}

// NewInvestmentRepository creates an empty investment repository backed by
// the given account repository.
func NewInvestmentRepository(accounts repository.AccountRepository) *InvestmentRepository {
	return &InvestmentRepository{accounts: accounts}
}

// Create registers a new product; ids auto-increment from 1.
func (r *InvestmentRepository) Create(taxRate, minimumInitialFunds int64) (domain.Investment, error) {
	if taxRate < 0 || minimumInitialFunds < 0 {
		return domain.Investment{}, fmt.Errorf("create investment: %w", util.ErrInvalidAmount)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	investment := domain.Investment{ID: r.nextID, TaxRate: taxRate, MinimumInitialFunds: minimumInitialFunds}
	r.investments = append(r.investments, investment)
	return investment, nil
}

// FindByID retrieves a product by id.
func (r *InvestmentRepository) FindByID(id int64) (domain.Investment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findByID(id)
}

func (r *InvestmentRepository) findByID(id int64) (domain.Investment, error) {
	for _, investment := range r.investments {
		if investment.ID == id {
			return investment, nil
		}
	}
	return domain.Investment{}, fmt.Errorf("investment %d: %w", id, util.ErrInvestmentNotFound)
}

// InitInvestment enrolls account in the product identified by investmentID,
// seeding the new wallet with the product's minimum initial funds. Every
// precondition (no active wallet, product exists, sufficient funds) is
// checked before any money moves.
func (r *InvestmentRepository) InitInvestment(account *domain.AccountWallet, investmentID int64) (*domain.InvestmentWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.wallets {
		if w.Account() == account {
			return nil, fmt.Errorf("init investment: %w", util.ErrAccountWithInvestment)
		}
	}
	investment, err := r.findByID(investmentID)
	if err != nil {
		return nil, fmt.Errorf("init investment: %w", err)
	}
	audit := domain.NewAudit(uuid.New(), domain.ServiceInvestment, descEnrollment)
	wallet, err := domain.NewInvestmentWallet(investment, account, audit)
	if err != nil {
		return nil, fmt.Errorf("init investment: %w", err)
	}
	r.wallets = append(r.wallets, wallet)
	return wallet, nil
}

// Deposit moves amount from the account identified by pix into its active
// investment wallet, audited as an "Aplicação de investimento".
func (r *InvestmentRepository) Deposit(pix string, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	wallet, err := r.findWalletByAccountPix(pix)
	if err != nil {
		return fmt.Errorf("investment deposit: %w", err)
	}
	audit := domain.NewAudit(uuid.New(), domain.ServiceInvestment, descContribution)
	if err := wallet.Contribute(amount, audit); err != nil {
		return fmt.Errorf("investment deposit: %w", err)
	}
	return nil
}

// Withdraw moves amount from the wallet back to its account, audited as a
// "Resgate de investimento". A wallet redeemed down to exactly zero is
// removed from the repository, ending its lifecycle.
func (r *InvestmentRepository) Withdraw(pix string, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	wallet, err := r.findWalletByAccountPix(pix)
	if err != nil {
		return fmt.Errorf("investment withdraw: %w", err)
	}
	audit := domain.NewAudit(uuid.New(), domain.ServiceInvestment, descRedemption)
	remaining, err := wallet.Redeem(amount, audit)
	if err != nil {
		return fmt.Errorf("investment withdraw: %w", err)
	}
	if remaining == 0 {
		r.removeWallet(wallet)
	}
	return nil
}

func (r *InvestmentRepository) removeWallet(wallet *domain.InvestmentWallet) {
	for i, w := range r.wallets {
		if w == wallet {
			r.wallets = append(r.wallets[:i], r.wallets[i+1:]...)
			return
		}
	}
}

// AccrueInterest credits one interest period to every active wallet, each
// under its own fresh "Rendimento de investimento" audit.
func (r *InvestmentRepository) AccrueInterest() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, wallet := range r.wallets {
		audit := domain.NewAudit(uuid.New(), domain.ServiceInvestment, descInterest)
		wallet.Accrue(audit)
	}
}

// FindWalletByAccountPix retrieves the active wallet of the account holding
// the exact pix key. An unknown pix key fails with ErrAccountNotFound; a
// known account without a wallet fails with ErrWalletNotFound.
func (r *InvestmentRepository) FindWalletByAccountPix(pix string) (*domain.InvestmentWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findWalletByAccountPix(pix)
}

func (r *InvestmentRepository) findWalletByAccountPix(pix string) (*domain.InvestmentWallet, error) {
	account, err := r.accounts.FindByPix(pix)
	if err != nil {
		return nil, err
	}
	for _, wallet := range r.wallets {
		if wallet.Account() == account {
			return wallet, nil
		}
	}
	return nil, fmt.Errorf("pix key %q: %w", pix, util.ErrWalletNotFound)
}

// List returns every product in creation order.
func (r *InvestmentRepository) List() []domain.Investment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Investment, len(r.investments))
	copy(out, r.investments)
	return out
}

// ListWallets returns every active wallet in creation order.
func (r *InvestmentRepository) ListWallets() []*domain.InvestmentWallet {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.InvestmentWallet, len(r.wallets))
	copy(out, r.wallets)
	return out
}

var _ repository.InvestmentRepository = (*InvestmentRepository)(nil)
