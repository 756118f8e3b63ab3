package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        string
	Name      string
	NIK       string
	Phone     string
	CreatedAt time.Time
}

type Account struct {
	ID         string
	CustomerID string
	Number     string
	Balance    decimal.Decimal
	CreatedAt  time.Time
}

type TransactionKind string

const (
	KindDeposit    TransactionKind = "DEPOSIT"
	KindWithdrawal TransactionKind = "WITHDRAWAL"
)

type Transaction struct {
	ID            string
	AccountID     string
	AccountNumber string
	Amount        decimal.Decimal
	Kind          TransactionKind
	CreatedAt     time.Time
}
