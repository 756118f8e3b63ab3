package service

import (
	"context"
)

type registrationRepository interface {
	Register(ctx context.Context, name, nik, phone string) (string, error)
}

type RegistrationService struct {
	repo registrationRepository
}

func NewRegistrationService(repo registrationRepository) *RegistrationService {
	return &RegistrationService{
		repo: repo,
	}
}

// Register creates a customer together with their first account and
// returns the issued account number. Field validation happens at the DTO
// layer before this point; uniqueness and account-number issuance are
// handled atomically by the repository.
func (s *RegistrationService) Register(ctx context.Context, name, nik, phone string) (string, error) {
	return s.repo.Register(ctx, name, nik, phone)
}
