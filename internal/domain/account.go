// internal/domain/account.go
package domain

import (
	"fmt"
	"sync"
	"sync/atomic"

	"atombank/internal/util"
)

// walletSeq orders lock acquisition across every wallet in the process.
// Two-wallet moves always lock the lower sequence first, so transfers and
// investment moves can never deadlock against each other.
var walletSeq int64

// wallet is the shared funds core of account and investment wallets: an
// integer balance plus the append-only ledger of signed entries that
// produced it.
type wallet struct {
	mu      sync.Mutex
	seq     int64
	balance int64
	entries []Entry
}

func newWallet() wallet {
	return wallet{seq: atomic.AddInt64(&walletSeq, 1)}
}

// credit and debit assume w.mu is held.
func (w *wallet) credit(amount int64, audit MoneyAudit) {
	w.balance += amount
	w.entries = append(w.entries, Entry{Audit: audit, Amount: amount})
}

func (w *wallet) debit(amount int64, audit MoneyAudit) {
	w.balance -= amount
	w.entries = append(w.entries, Entry{Audit: audit, Amount: -amount})
}

// move debits amount from src and credits it to dst as one atomic step under
// both wallet locks, acquired in global sequence order. The whole movement
// shares the given audit. Fails without mutating anything when src cannot
// cover amount.
func move(src, dst *wallet, amount int64, audit MoneyAudit) error {
	if amount < 0 {
		return util.ErrInvalidAmount
	}
	if src == dst {
		return util.ErrSameWallet
	}
	first, second := src, dst
	if dst.seq < src.seq {
		first, second = dst, src
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if src.balance < amount {
		return util.ErrInsufficientFunds
	}
	src.debit(amount, audit)
	dst.credit(amount, audit)
	return nil
}

// AccountWallet is a single bank account: its set of pix keys, its balance
// and the ledger of every movement that ever touched it.
type AccountWallet struct {
	wallet
	pixKeys []string
}

// NewAccountWallet creates an empty account identified by the given pix keys.
// Key validation (non-empty, distinct, unused) is the repository's job.
func NewAccountWallet(pixKeys []string) *AccountWallet {
	keys := make([]string, len(pixKeys))
	copy(keys, pixKeys)
	return &AccountWallet{wallet: newWallet(), pixKeys: keys}
}

// PixKeys returns a copy of the account's pix keys.
func (w *AccountWallet) PixKeys() []string {
	keys := make([]string, len(w.pixKeys))
	copy(keys, w.pixKeys)
	return keys
}

// HasPixKey reports whether key exactly matches one of the account's pix keys.
func (w *AccountWallet) HasPixKey(key string) bool {
	for _, k := range w.pixKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Balance returns the current balance in cents.
func (w *AccountWallet) Balance() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// Credit adds amount to the account, recording one ledger entry under audit.
func (w *AccountWallet) Credit(amount int64, audit MoneyAudit) error {
	if amount < 0 {
		return util.ErrInvalidAmount
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.credit(amount, audit)
	return nil
}

// Debit removes amount from the account. The funds check and the mutation
// happen under one lock acquisition, so the balance can never go negative.
func (w *AccountWallet) Debit(amount int64, audit MoneyAudit) error {
	if amount < 0 {
		return util.ErrInvalidAmount
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.balance < amount {
		return util.ErrInsufficientFunds
	}
	w.debit(amount, audit)
	return nil
}

// TransferTo atomically moves amount from this account to target. Both sides
// of the transfer share the single audit record.
func (w *AccountWallet) TransferTo(target *AccountWallet, amount int64, audit MoneyAudit) error {
	return move(&w.wallet, &target.wallet, amount, audit)
}

// History returns the account's movements grouped by audit timestamp, in
// chronological order. Entries are appended as operations happen, so the
// ledger is already time-ordered.
func (w *AccountWallet) History() []HistoryGroup {
	w.mu.Lock()
	defer w.mu.Unlock()
	return groupByTimestamp(w.entries)
}

// String renders the account for listing output.
func (w *AccountWallet) String() string {
	return fmt.Sprintf("AccountWallet{pix: %v, saldo: %d}", w.pixKeys, w.Balance())
}
