package service

import (
	"context"

	"github.com/koyif/accountsvc/internal/domain"
	"github.com/shopspring/decimal"
)

type accountRepository interface {
	Account(ctx context.Context, number string) (*domain.Account, error)
	Transactions(ctx context.Context, number string) ([]domain.Transaction, error)
}

type mutationRepository interface {
	Deposit(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error)
}

type AccountService struct {
	accountRepo  accountRepository
	mutationRepo mutationRepository
}

func NewAccountService(accountRepo accountRepository, mutationRepo mutationRepository) *AccountService {
	return &AccountService{
		accountRepo:  accountRepo,
		mutationRepo: mutationRepo,
	}
}

func (s *AccountService) Deposit(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	return s.mutationRepo.Deposit(ctx, number, amount)
}

func (s *AccountService) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	return s.mutationRepo.Withdraw(ctx, number, amount)
}

func (s *AccountService) Balance(ctx context.Context, number string) (decimal.Decimal, error) {
	account, err := s.accountRepo.Account(ctx, number)
	if err != nil {
		return decimal.Zero, err
	}

	return account.Balance, nil
}

func (s *AccountService) Transactions(ctx context.Context, number string) ([]domain.Transaction, error) {
	return s.accountRepo.Transactions(ctx, number)
}
