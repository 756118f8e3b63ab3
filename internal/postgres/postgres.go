package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/koyif/accountsvc/internal/domain"
	"github.com/koyif/accountsvc/pkg/logger"
	"github.com/shopspring/decimal"
)

const transactionRollbackError = "error rolling back transaction"

// registerMaxAttempts bounds account-number regeneration when a generated
// number collides with an existing account.
const registerMaxAttempts = 5

// NumberGenerator produces a candidate account number. Uniqueness is
// enforced here, against the accounts table, not by the generator.
type NumberGenerator func() (string, error)

type Postgres struct {
	DB  *sql.DB
	gen NumberGenerator
}

func New(db *sql.DB, gen NumberGenerator) *Postgres {
	return &Postgres{DB: db, gen: gen}
}

func (p *Postgres) Close() error {
	return p.DB.Close()
}

// Register creates the customer and their first account in one
// transaction and returns the issued account number. A unique violation
// on nik or phone surfaces as *domain.DuplicateDataError; an account
// number collision is retried with a fresh number up to
// registerMaxAttempts times within the same transaction.
func (p *Postgres) Register(ctx context.Context, name, nik, phone string) (string, error) {
	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("error starting transaction: %w", err)
	}

	customerID := uuid.NewString()
	now := time.Now()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO customers (id, name, nik, phone, created_at) VALUES ($1, $2, $3, NULLIF($4, ''), $5)",
		customerID, name, nik, phone, now,
	)
	if err != nil {
		rollback(tx)
		if fields := duplicateFields(err); fields != nil {
			logger.Log.Warn("customer already exists", logger.String("nik", nik))
			return "", &domain.DuplicateDataError{Fields: fields}
		}
		return "", fmt.Errorf("error creating customer: %w", err)
	}

	number, err := p.insertAccount(ctx, tx, customerID, now)
	if err != nil {
		rollback(tx)
		return "", err
	}

	if err = tx.Commit(); err != nil {
		rollback(tx)
		return "", fmt.Errorf("error committing transaction: %w", err)
	}

	return number, nil
}

// insertAccount issues an account number and inserts the account row,
// regenerating on collision. The EXISTS pre-check runs inside the caller's
// transaction; a concurrent registration slipping between the check and
// the insert is still caught by the accounts_number_key constraint.
func (p *Postgres) insertAccount(ctx context.Context, tx *sql.Tx, customerID string, now time.Time) (string, error) {
	for attempt := 1; attempt <= registerMaxAttempts; attempt++ {
		number, err := p.gen()
		if err != nil {
			return "", fmt.Errorf("error generating account number: %w", err)
		}

		var taken bool
		err = tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM accounts WHERE number = $1)", number).
			Scan(&taken)
		if err != nil {
			return "", fmt.Errorf("error checking account number: %w", err)
		}
		if taken {
			logger.Log.Warn("account number collision, regenerating",
				logger.String("number", number),
				logger.Int("attempt", attempt),
			)
			continue
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO accounts (id, customer_id, number, balance, created_at) VALUES ($1, $2, $3, 0, $4)",
			uuid.NewString(), customerID, number, now,
		)
		if err != nil {
			return "", fmt.Errorf("error creating account: %w", err)
		}

		return number, nil
	}

	return "", domain.ErrAccountNumberTaken
}

// Deposit credits the account inside one transaction: the account row is
// locked, a DEPOSIT transaction row is appended, and the balance update
// returns the post-update value.
func (p *Postgres) Deposit(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error) {
	return p.applyTransaction(ctx, number, amount, domain.KindDeposit)
}

// Withdraw debits the account inside one transaction. The balance check
// happens on the locked row, so a concurrent withdrawal cannot overdraw.
func (p *Postgres) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error) {
	return p.applyTransaction(ctx, number, amount, domain.KindWithdrawal)
}

func (p *Postgres) applyTransaction(ctx context.Context, number string, amount decimal.Decimal, kind domain.TransactionKind) (decimal.Decimal, error) {
	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error starting transaction: %w", err)
	}

	var account domain.Account
	err = tx.QueryRowContext(ctx, "SELECT id, number, balance FROM accounts WHERE number = $1 FOR UPDATE", number).
		Scan(&account.ID, &account.Number, &account.Balance)
	if err != nil {
		rollback(tx)
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, domain.ErrAccountNotFound
		}
		return decimal.Zero, fmt.Errorf("error fetching account: %w", err)
	}

	delta := amount
	if kind == domain.KindWithdrawal {
		if account.Balance.LessThan(amount) {
			rollback(tx)
			logger.Log.Warn("insufficient funds for withdrawal",
				logger.String("number", number),
				logger.String("amount", amount.String()),
			)
			return decimal.Zero, domain.ErrInsufficientFunds
		}
		delta = amount.Neg()
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO transactions (id, account_id, account_number, amount, kind, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		uuid.NewString(), account.ID, account.Number, amount, kind, time.Now(),
	)
	if err != nil {
		rollback(tx)
		return decimal.Zero, fmt.Errorf("error inserting transaction: %w", err)
	}

	var balance decimal.Decimal
	err = tx.QueryRowContext(ctx,
		"UPDATE accounts SET balance = balance + $1 WHERE id = $2 AND balance + $1 >= 0 RETURNING balance",
		delta, account.ID,
	).Scan(&balance)
	if err != nil {
		rollback(tx)
		if errors.Is(err, sql.ErrNoRows) {
			// the locked read already checked the balance; this guard
			// only fires if that check is ever broken
			return decimal.Zero, domain.ErrInsufficientFunds
		}
		return decimal.Zero, fmt.Errorf("error updating balance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		rollback(tx)
		return decimal.Zero, fmt.Errorf("error committing transaction: %w", err)
	}

	return balance, nil
}

// Account fetches an account by its number. Read-only, no transaction.
func (p *Postgres) Account(ctx context.Context, number string) (*domain.Account, error) {
	var account domain.Account
	err := p.DB.QueryRowContext(ctx,
		"SELECT id, customer_id, number, balance, created_at FROM accounts WHERE number = $1", number).
		Scan(&account.ID, &account.CustomerID, &account.Number, &account.Balance, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error fetching account: %w", err)
	}

	return &account, nil
}

// Transactions lists the account's history, newest first.
func (p *Postgres) Transactions(ctx context.Context, number string) ([]domain.Transaction, error) {
	account, err := p.Account(ctx, number)
	if err != nil {
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx,
		"SELECT id, account_id, account_number, amount, kind, created_at FROM transactions WHERE account_id = $1 ORDER BY created_at DESC",
		account.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching transactions: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("error closing rows", logger.Error(err))
		}
	}(rows)

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.AccountID, &t.AccountNumber, &t.Amount, &t.Kind, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over transactions: %w", err)
	}

	return transactions, nil
}

// duplicateFields maps a unique-violation error to the conflicting
// field names, or nil if the error is not a unique violation.
func duplicateFields(err error) []string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" { // unique_violation
		return nil
	}

	return constraintFields(pgErr.ConstraintName)
}

func constraintFields(constraint string) []string {
	switch constraint {
	case "customers_nik_key":
		return []string{"nik"}
	case "customers_phone_key":
		return []string{"no_hp"}
	case "accounts_number_key":
		return []string{"no_rekening"}
	default:
		return []string{"unknown"}
	}
}

func rollback(tx *sql.Tx) {
	err := tx.Rollback()
	if err != nil {
		logger.Log.Error(transactionRollbackError, logger.Error(err))
	}
}
