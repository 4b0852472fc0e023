// internal/domain/money.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// BankService identifies which product a money movement belongs to.
type BankService string

const (
	ServiceAccount    BankService = "ACCOUNT"
	ServiceInvestment BankService = "INVESTMENT"
)

// MoneyAudit is the immutable record attached to one movement batch. Every
// unit of money moved in the same operation shares a single audit, so a
// wallet's history is one audit per operation, keyed by timestamp.
type MoneyAudit struct {
	TransactionID uuid.UUID
	Service       BankService
	Description   string
	Timestamp     time.Time
}

// NewAudit creates the audit record for a movement batch.
func NewAudit(transactionID uuid.UUID, service BankService, description string) MoneyAudit {
	return MoneyAudit{
		TransactionID: transactionID,
		Service:       service,
		Description:   description,
		Timestamp:     time.Now().UTC(),
	}
}

// Entry is one signed movement on a wallet's append-only ledger. Amount is in
// the smallest currency unit (cents): positive for credits, negative for
// debits. The wallet balance is always the sum of its entries.
type Entry struct {
	Audit  MoneyAudit
	Amount int64
}
